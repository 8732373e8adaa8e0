package models

import "time"

type ScanStatus string

const (
	ScanStatusInProgress ScanStatus = "in_progress"
	ScanStatusCompleted  ScanStatus = "completed"
	ScanStatusFailed     ScanStatus = "failed"
)

// Scan is one fleet-wide evaluation run. Status moves from InProgress
// to exactly one of Completed or Failed and is never revisited; a new
// run always creates a fresh row.
type Scan struct {
	ID          uint      `gorm:"primaryKey"`
	StartedAt   time.Time `gorm:"not null"`
	CompletedAt *time.Time
	Status      ScanStatus `gorm:"type:text;not null;default:'in_progress'"`
}
