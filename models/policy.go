package models

import "time"

// Action identifiers accepted in the compliance config document.
// Unknown identifiers are skipped with a warning so that configs
// written for a newer bot version do not break older deployments.
const (
	ActionCreateIssue  = "create_issue"
	ActionArchiveRepo  = "archive_repo"
	ActionCommentOnPRs = "comment_on_prs"
	ActionBlockPRs     = "block_prs"
	ActionLogOnly      = "log_only"
)

// Policy is a named, typed compliance rule. Type is the stable key
// that matches exactly one evaluator and one config entry. Rows are
// inserted from the config at scan start and never deleted: historical
// violations keep referencing them even after an operator removes the
// policy from the document.
type Policy struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Type        string `gorm:"uniqueIndex;not null"`
	Description string
	Actions     StringList `gorm:"type:text;serializer:json"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}
