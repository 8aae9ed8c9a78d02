package models

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`

	Suspended          bool   `gorm:"default:false" json:"suspended"`
	Available          bool   `gorm:"default:true" json:"available"`
	AvailabilityStatus string `json:"availability_status"`

	// One-time password for credential reset. Cleared after use.
	Otp       *string    `json:"-"`
	OtpExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
