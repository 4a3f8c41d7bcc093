package dto

type ForgotPasswordInput struct {
	Email string `json:"email"`
}

type ResetPasswordInput struct {
	Password         string `json:"password"`
	VerificationCode string `json:"verification_code"`
}

type ResetEmailResponse struct {
	URL     string `json:"url"`
	EmailID string `json:"email_id"`
}
