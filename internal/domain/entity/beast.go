// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Beast is the core account entity. A beast is created either directly with a
// gamer tag and email, or lazily on the first successful Apple sign-in, in
// which case AppleID carries the provider subject and the gamer tag is
// auto-generated.
type Beast struct {
	ID        int64     `json:"id"`       // Stable numeric identifier, assigned at creation, never reused.
	GamerTag  string    `json:"gamerTag"` // Unique display handle, mutable.
	Email     string    `json:"email"`    // Unique contact address, mutable.
	AppleID   *string   `json:"appleId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeastUpdate carries the partial field set accepted by the update operation.
// Nil pointers mean "leave unchanged".
type BeastUpdate struct {
	GamerTag *string
	Email    *string
}

// Empty reports whether no field was supplied.
func (u BeastUpdate) Empty() bool {
	return u.GamerTag == nil && u.Email == nil
}
