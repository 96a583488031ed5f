package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"not null" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	BarberID uint `gorm:"not null;index:idx_appointments_barber_date" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	// Date is truncated to day granularity; Time is a catalog label ("HH:MM").
	Date time.Time `gorm:"not null;index:idx_appointments_barber_date" json:"date"`
	Time string    `gorm:"size:5;not null" json:"time"`

	Service     string `gorm:"size:100;not null" json:"service"`
	DurationMin int    `gorm:"default:30" json:"duration_min"`
	Notes       string `gorm:"size:255" json:"notes"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
