package models

import "time"

// BarberAvailability overrides the default slot catalog for one barber on one
// day. No row for a (barber, date) pair means the full catalog applies.
type BarberAvailability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"not null;uniqueIndex:idx_availability_barber_date" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date time.Time `gorm:"not null;uniqueIndex:idx_availability_barber_date" json:"date"`

	TimeSlots   []string `gorm:"serializer:json;type:text" json:"time_slots"`
	IsAvailable bool     `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
