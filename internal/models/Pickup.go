package models

import (
	"gorm.io/gorm"
)

// Pickup status values. Transitions are one-way: Pending -> Completed.
const (
	PickupPending   = "Pending"
	PickupCompleted = "Completed"
)

// Pickup represents a scheduled waste-collection request made by a user.
// Lat/Lng locate the stop for the route optimizer.
type Pickup struct {
	gorm.Model

	UserID    uint    `json:"user_id" gorm:"index"`
	User      User    `gorm:"foreignKey:UserID" json:"-"`
	WasteType string  `json:"waste_type" binding:"required"`
	Address   string  `json:"address" binding:"required"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Status    string  `json:"status" gorm:"default:Pending"`
}
