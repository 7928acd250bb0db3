package entity

import "time"

// Device is the locally minted device identity. Persisted so push-token
// registrations keep the same device id across restarts.
type Device struct {
	ID        uint   `gorm:"primaryKey"`
	UUID      string `gorm:"not null"`
	CreatedAt time.Time
}
