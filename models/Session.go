package models

import "time"

// Session is a persisted scs session: the encoded session values of one
// browser, including its working recipe.
type Session struct {
	Token  string    `gorm:"primaryKey;size:64"`
	Data   []byte    `gorm:"not null"`
	Expiry time.Time `gorm:"index;not null"`
}
