package schema

import "time"

// Session is the credential issued by a successful login. It is immutable
// once issued; re-login replaces the whole value.
type Session struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSession creates a session for the given token stamped with the current time.
func NewSession(token string) *Session {
	return &Session{Token: token, CreatedAt: time.Now().UTC()}
}

// Valid reports whether the session carries a token. Expiry is not checked
// locally; the remote is the only authority on token validity.
func (s *Session) Valid() bool {
	return s != nil && s.Token != ""
}
