package entity

// UserLoginData is the identity extracted from a verified access token.
// Account management lives in a separate service; this backend only
// consumes the claims.
type UserLoginData struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
