package models

import (
	"time"
)

type Room struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Number    int       `json:"number"`
	TypeID    uint      `json:"typeId"`
	HotelID   uint      `json:"hotelId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Type      Type      `json:"type" gorm:"foreignKey:TypeID"`
	Hotel     Hotel     `json:"hotel" gorm:"foreignKey:HotelID"`
	Guests    []Guest   `json:"guests" gorm:"many2many:room_guests;constraint:OnDelete:CASCADE"`
}

// Capacity is derived from the room's type. The type must be preloaded.
func (r *Room) Capacity() int {
	return r.Type.Capacity
}
