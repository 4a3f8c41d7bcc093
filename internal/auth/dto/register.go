package dto

type RegisterInput struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Password  string `json:"password"`
	UserAgent string `json:"-"`
}
