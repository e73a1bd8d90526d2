package models

import (
	"time"
)

type Hotel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:40"`
	Address   string    `json:"address" gorm:"size:100"`
	Stars     int       `json:"stars"`
	Phone     string    `json:"phone" gorm:"size:20"`
	Email     string    `json:"email" gorm:"size:256"`
	Website   string    `json:"website" gorm:"size:150"`
	Image     string    `json:"image" gorm:"size:400"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms     []Room    `json:"rooms" gorm:"foreignKey:HotelID"`
	Services  []Service `json:"services" gorm:"many2many:hotel_services;constraint:OnDelete:CASCADE"`
}
