package models

import (
	"gorm.io/gorm"
)

// Donation records an amount given by a donor account to an NGO.
// CreatedAt is the donation timestamp.
type Donation struct {
	gorm.Model

	Amount  float64 `json:"amount" binding:"required"`
	DonorID uint    `json:"donor_id" gorm:"index"`
	Donor   User    `gorm:"foreignKey:DonorID" json:"-"`
	NgoID   uint    `json:"ngo_id" gorm:"index"`
	Ngo     Ngo     `gorm:"foreignKey:NgoID" json:"-"`
}
