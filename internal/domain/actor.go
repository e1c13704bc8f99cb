package domain

import "time"

// Actor represents an authenticated principal registered in the system.
type Actor struct {
	ID        string
	Username  string
	FullName  string
	RoleLevel int
	Token     string
	IsActive  bool
	CreatedAt time.Time
}

// DisplayName returns the name used when composing notification messages.
func (a *Actor) DisplayName() string {
	if a.FullName != "" {
		return a.FullName
	}
	return a.Username
}
