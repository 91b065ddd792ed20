package models

import "time"

// Location is a city-level grouping of apartments and staff. It is the
// partition reports and access control are scoped by.
type Location struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	City    string `gorm:"unique;not null" json:"city"`
	Address string `gorm:"unique;not null" json:"address"`

	Apartments []Apartment `gorm:"foreignKey:LocationID" json:"apartments,omitempty"`
	Users      []User      `gorm:"foreignKey:LocationID" json:"users,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
