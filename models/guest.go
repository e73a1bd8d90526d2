package models

import (
	"time"
)

type Guest struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:30"`
	LastName    string    `json:"lastName" gorm:"size:30"`
	DniPassport string    `json:"dniPassport" gorm:"size:15"`
	Email       string    `json:"email" gorm:"size:256"`
	Phone       string    `json:"phone" gorm:"size:20"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms       []Room    `json:"rooms" gorm:"many2many:room_guests;constraint:OnDelete:CASCADE"`
	Services    []Service `json:"services" gorm:"many2many:guest_services;constraint:OnDelete:CASCADE"`
}
