package models

import "time"

type ActionStatus string

const (
	ActionStatusSuccess ActionStatus = "success"
	ActionStatusFailed  ActionStatus = "failed"
	ActionStatusSkipped ActionStatus = "skipped"
)

// ActionLog is the audit record of one attempted remediation. Every
// executed action writes exactly one row regardless of outcome;
// Failed and Skipped are ordinary statuses, not errors.
type ActionLog struct {
	ID           uint       `gorm:"primaryKey"`
	RepositoryID uint       `gorm:"index;not null"`
	Repository   Repository `gorm:"constraint:OnDelete:CASCADE"`
	PolicyID     uint       `gorm:"index;not null"`
	Policy       Policy
	ActionType   string       `gorm:"not null"`
	Status       ActionStatus `gorm:"type:text;not null"`
	Details      string       `gorm:"type:text"`
	CreatedAt    time.Time    `gorm:"autoCreateTime"`
}
