// internal/models/truck.go
package models

import (
	"gorm.io/gorm"
)

// Truck is a collection vehicle assigned to a driver. Its registration
// number is used as the vehicle id in optimizer requests.
type Truck struct {
	gorm.Model
	RegistrationNo string `json:"registration_no" gorm:"unique"`
	CapacityKg     int    `json:"capacity_kg"`
	DriverID       uint   `json:"driver_id" gorm:"index"` // user id of the driver
	InService      bool   `json:"in_service" gorm:"default:true"`
}
