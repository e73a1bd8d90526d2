package models

import (
	"fmt"
	"time"
)

type Type struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:30"`
	Price     float64   `json:"price"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms     []Room    `json:"rooms" gorm:"foreignKey:TypeID"`
}

func (t *Type) ValidateCapacity() error {
	if t.Capacity < 1 || t.Capacity > 12 {
		return fmt.Errorf("invalid capacity: %d, must be between 1 and 12", t.Capacity)
	}
	return nil
}
