// internal/models/ngo.go
package models

import (
	"gorm.io/gorm"
)

// Ngo represents a non-governmental organization account
// that can receive donations from other accounts.
type Ngo struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"user_id"`

	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`

	Donations []Donation `gorm:"foreignKey:NgoID" json:"donations,omitempty"`
}
