package models

import "time"

// Violation records that a repository failed a policy within one scan.
// Violations are immutable once written; trend queries read them
// across scans, so they are only ever removed by cascade when their
// scan or repository goes away.
type Violation struct {
	ID           uint       `gorm:"primaryKey"`
	ScanID       uint       `gorm:"index;not null"`
	Scan         Scan       `gorm:"constraint:OnDelete:CASCADE"`
	RepositoryID uint       `gorm:"index;not null"`
	Repository   Repository `gorm:"constraint:OnDelete:CASCADE"`
	PolicyID     uint       `gorm:"index;not null"`
	Policy       Policy
	Detail       string    `gorm:"type:text"`
	DetectedAt   time.Time `gorm:"not null"`
}
