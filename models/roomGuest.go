package models

import (
	"time"
)

// RoomGuest is the booking row linking one room and one guest for a stay
// interval. A (room, guest) pair may hold several rows as long as their
// intervals do not intersect; the admission engine guards that before insert.
type RoomGuest struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RoomID       uint      `json:"roomId" gorm:"index;constraint:OnDelete:CASCADE"`
	GuestID      uint      `json:"guestId" gorm:"index;constraint:OnDelete:CASCADE"`
	CheckInDate  string    `json:"checkInDate" gorm:"size:10"`
	CheckOutDate string    `json:"checkOutDate" gorm:"size:10"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (RoomGuest) TableName() string {
	return "room_guests"
}
