// Package models defines server-side data models persisted by the repositories
// and their client-facing serialized forms.
package models

import "time"

// User is an account holder. PasswordHash never leaves the server.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserView is the public representation of a User. It is also the identity
// carried inside auth tokens.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) Serialize() UserView {
	return UserView{ID: u.ID, Username: u.Username, Email: u.Email}
}

// Profile is the populated user view returned by GET /api/users.
type Profile struct {
	UserView
	Crops   []CropView    `json:"crops"`
	Journal []JournalView `json:"journal"`
}

// NewProfile assembles a Profile. Nil slices serialize as empty arrays.
func NewProfile(u *User, crops []*Crop, entries []*JournalEntry) Profile {
	p := Profile{
		UserView: u.Serialize(),
		Crops:    make([]CropView, 0, len(crops)),
		Journal:  make([]JournalView, 0, len(entries)),
	}
	for _, c := range crops {
		p.Crops = append(p.Crops, c.Serialize())
	}
	for _, e := range entries {
		p.Journal = append(p.Journal, e.Serialize())
	}
	return p
}
