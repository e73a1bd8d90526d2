package models

import (
	"time"
)

type GuestService struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	GuestID   uint      `json:"guestId" gorm:"index;constraint:OnDelete:CASCADE"`
	ServiceID uint      `json:"serviceId" gorm:"index;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (GuestService) TableName() string {
	return "guest_services"
}
