package models

import "time"

// ComplianceSummary is the fleet-level rollup computed against the
// latest completed scan. An empty fleet counts as fully compliant.
type ComplianceSummary struct {
	ScanID            uint       `json:"scan_id"`
	ScanCompletedAt   *time.Time `json:"scan_completed_at,omitempty"`
	TotalRepos        int64      `json:"total_repos"`
	ViolatingRepos    int64      `json:"violating_repos"`
	CompliantRepos    int64      `json:"compliant_repos"`
	CompliancePercent float64    `json:"compliance_percent"`
}
