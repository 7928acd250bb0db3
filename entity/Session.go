package entity

import "time"

// StoredSession is the single row persisted across restarts: the bearer
// token plus a JSON snapshot of the logged-in user.
type StoredSession struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"not null"`
	UserJSON  []byte `gorm:"type:blob"`
	UpdatedAt time.Time
}
