package models

import "time"

const (
	RoleClient = "client"
	RoleBarber = "barber"
	RoleAdmin  = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'client'" json:"role"`

	// Service prices only matter for barbers.
	PriceHaircut          int `gorm:"default:15000" json:"price_haircut"`
	PriceHaircutWithBeard int `gorm:"default:25000" json:"price_haircut_with_beard"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
