// Package model contains the GORM persistence models. These are kept separate
// from domain entities so the schema can evolve without leaking into the domain.
package model

import "time"

// BeastModel is the persistence model for the beasts table. GamerTag, Email,
// and AppleID each carry a uniqueness constraint; AppleID is nullable for
// beasts created directly rather than through Apple sign-in.
type BeastModel struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement"`
	GamerTag  string  `gorm:"column:gamer_tag;not null;uniqueIndex:idx_beasts_gamer_tag"`
	Email     string  `gorm:"column:email;not null;uniqueIndex:idx_beasts_email"`
	AppleID   *string `gorm:"column:apple_id;uniqueIndex:idx_beasts_apple_id"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM.
func (BeastModel) TableName() string {
	return "beasts"
}
