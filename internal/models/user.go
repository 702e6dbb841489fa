package models

// User represents a user authenticated via OIDC. Authentication is
// optional; when no issuer is configured the app runs without users.
// Nothing about a user is persisted beyond the session.
type User struct {
	Sub     string `json:"sub"` // OIDC subject identifier
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
