package models

import "time"

type RepoStatus string

const (
	// RepoStatusPending marks a repository that has been observed
	// upstream but not yet evaluated by a completed scan.
	RepoStatusPending RepoStatus = "pending"
	RepoStatusActive  RepoStatus = "active"
)

// Repository is a tracked unit under audit. GithubID is the stable
// upstream identifier: it survives renames, so sync matches on it and
// never on the name.
type Repository struct {
	ID         uint       `gorm:"primaryKey"`
	GithubID   int64      `gorm:"uniqueIndex;not null"`
	Name       string     `gorm:"not null"`
	FullName   string     `gorm:"not null"`
	Archived   bool       `gorm:"default:false"`
	Status     RepoStatus `gorm:"type:text;not null;default:'pending'"`
	LastSeenAt time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}
