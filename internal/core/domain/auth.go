package domain

// GoogleUserInfo is the subset of the Google userinfo payload the
// application cares about when signing a user in via Google.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
