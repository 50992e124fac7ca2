package models

import "time"

// AuditLog records every mutating request for later review.
type AuditLog struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    *uint `gorm:"index"`
	Method    string `gorm:"size:16"`
	Path      string `gorm:"size:255"`
	Action    string `gorm:"size:2048"` // method + path + truncated request body
	IP        string `gorm:"size:64"`
	UserAgent string `gorm:"size:255"`
	CreatedAt time.Time
}
