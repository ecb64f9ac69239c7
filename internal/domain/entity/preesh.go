package entity

import "time"

// Heaviness grades how much appreciation a preesh carries.
type Heaviness string

const (
	HeavinessLight    Heaviness = "light"
	HeavinessMedium   Heaviness = "medium"
	HeavinessHeavy    Heaviness = "heavy"
	HeavinessUltimate Heaviness = "ultimate"
)

// Valid reports whether h is one of the known heaviness levels.
func (h Heaviness) Valid() bool {
	switch h {
	case HeavinessLight, HeavinessMedium, HeavinessHeavy, HeavinessUltimate:
		return true
	}

	return false
}

// Preesh is an appreciation post sent from one beast to another.
type Preesh struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorID   int64     `json:"authorId"`
	ReceiverID int64     `json:"receiverId"`
	Heaviness  Heaviness `json:"heaviness"`
	Author     *Beast    `json:"author,omitempty"`
	Receiver   *Beast    `json:"receiver,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
