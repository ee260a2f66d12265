package models

// LifecycleStatus is the review state shared by applications and logs.
// It starts at pending and is moved exactly once by a university decision.
type LifecycleStatus string

const (
	StatusPending  LifecycleStatus = "pending"
	StatusApproved LifecycleStatus = "approved"
	StatusRejected LifecycleStatus = "rejected"
)

// Valid reports whether s is one of the three lifecycle values.
func (s LifecycleStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Decided reports whether the status has left pending.
func (s LifecycleStatus) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

// JobStatus is independent of the application/log lifecycle.
type JobStatus string

const (
	JobActive JobStatus = "active"
	JobClosed JobStatus = "closed"
)

// ReviewStatus classifies an intern on company-side screens. It is a
// separate enumeration from LifecycleStatus and the two must never be
// cross-assigned.
type ReviewStatus string

const (
	ReviewNoReportMissing ReviewStatus = "no-report-missing"
	ReviewReportMissing   ReviewStatus = "report-missing"
	ReviewApproved        ReviewStatus = "approved"
)
