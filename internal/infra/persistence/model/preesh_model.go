package model

import "time"

// PreeshModel is the persistence model for the preeshes table.
type PreeshModel struct {
	ID         int64       `gorm:"column:id;primaryKey;autoIncrement"`
	Text       string      `gorm:"column:text;not null"`
	AuthorID   int64       `gorm:"column:author_id;not null;index:idx_preeshes_author"`
	ReceiverID int64       `gorm:"column:receiver_id;not null;index:idx_preeshes_receiver"`
	Heaviness  string      `gorm:"column:heaviness;not null"`
	Author     *BeastModel `gorm:"foreignKey:AuthorID"`
	Receiver   *BeastModel `gorm:"foreignKey:ReceiverID"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM.
func (PreeshModel) TableName() string {
	return "preeshes"
}
