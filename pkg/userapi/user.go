package userapi

import "fmt"

// User is a single fetched entity, displayed as one list row.
// Only the identifier is guaranteed; login and avatar are optional.
// Values are immutable once decoded.
type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// DisplayName returns the login, falling back to a numeric placeholder
// for records without one.
func (u User) DisplayName() string {
	if u.Login != "" {
		return u.Login
	}
	return fmt.Sprintf("user #%d", u.ID)
}

// HasAvatar reports whether the record carries an avatar reference.
func (u User) HasAvatar() bool {
	return u.AvatarURL != ""
}
