package core

import "context"

// System system info
type System struct {
	// AdminID is the administrator identity set once at construction time.
	AdminID  string
	ClientID string
	Version  string
}

// IsAdmin check if the user is the administrator
func (s *System) IsAdmin(userID string) bool {
	return s.AdminID != "" && s.AdminID == userID
}

// Session validates an access token and resolves the caller identity.
type Session interface {
	Login(ctx context.Context, accessToken string) (*User, error)
}
