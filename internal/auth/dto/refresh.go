package dto

type RefreshInput struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse carries a rotated refresh token only when the backing
// session was extended; the caller keeps its old one otherwise.
type RefreshResponse struct {
	AccessToken     string `json:"access_token"`
	NewRefreshToken string `json:"new_refresh_token,omitempty"`
}
