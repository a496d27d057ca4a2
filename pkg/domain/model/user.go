package model

import "github.com/secmon-lab/tally/pkg/domain/types"

// User is an entry of the user list API
type User struct {
	ID    types.UserID `json:"id" firestore:"id"`
	Name  string       `json:"name" firestore:"name"`
	Email string       `json:"email" firestore:"email"`
}

// UserPatch holds optional fields of a user update
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Apply returns a copy of u with the set fields of p applied
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}

// SeedUsers returns the initial user list
func SeedUsers() []User {
	return []User{
		{ID: 1, Name: "Alice", Email: "alice@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
	}
}
