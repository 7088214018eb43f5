package model

import "time"

// Planet represents a planetary record. Mass is in kilograms, radius in
// kilometers, distance is kilometers from the sun.
type Planet struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Mass     float64 `json:"mass" gorm:"not null"`
	Radius   float64 `json:"radius" gorm:"not null"`
	Distance float64 `json:"distance" gorm:"not null"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
