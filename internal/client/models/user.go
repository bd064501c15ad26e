// Package models holds the client-side data records exchanged with the
// storefront API.
package models

// User is the authenticated identity as reported by the API.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Active   bool   `json:"active,omitempty"`
}

// LoginResult is the payload of a successful login call.
type LoginResult struct {
	SessionToken string `json:"sessionToken"`
	Username     string `json:"username"`
}
