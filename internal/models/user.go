package models

// User is a single stored account record. Password is kept in memory only
// and never serialized.
type User struct {
	ID       int64  `json:"id"`
	LoginID  string `json:"loginId"`
	Password string `json:"-"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Redacted returns a copy of the record with the credential cleared, safe to
// hand to any caller.
func (u User) Redacted() User {
	u.Password = ""
	return u
}
