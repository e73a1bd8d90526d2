package models

import (
	"time"
)

type Service struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:40"`
	Price      float64   `json:"price"`
	CategoryID uint      `json:"categoryId"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Category   Category  `json:"category" gorm:"foreignKey:CategoryID"`
	Hotels     []Hotel   `json:"hotels" gorm:"many2many:hotel_services;constraint:OnDelete:CASCADE"`
	Guests     []Guest   `json:"guests" gorm:"many2many:guest_services;constraint:OnDelete:CASCADE"`
}
