package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Dish struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string          `gorm:"not null" json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	SubmenuID uuid.UUID `gorm:"type:uuid;index;not null" json:"submenu_id"`
	Submenu   Submenu   `json:"-"`
}

func (d *Dish) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// Price is normalized to two decimal places (round half up) before it ever
// reaches the store.
func (d *Dish) BeforeSave(tx *gorm.DB) error {
	d.Price = d.Price.Round(2)
	return nil
}
