package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Submenu struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`

	MenuID uuid.UUID `gorm:"type:uuid;index;not null" json:"menu_id"`
	Menu   Menu      `json:"-"`

	Dishes []Dish `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (s *Submenu) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
