package models

import (
	"time"
)

type HotelService struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	HotelID   uint      `json:"hotelId" gorm:"index;constraint:OnDelete:CASCADE"`
	ServiceID uint      `json:"serviceId" gorm:"index;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (HotelService) TableName() string {
	return "hotel_services"
}
