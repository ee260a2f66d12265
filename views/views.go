// Package views contains the pure projections that populate role-specific
// screens. Functions here take store snapshots and never mutate them.
package views

import (
	"strings"

	"internship-management-api/models"
)

// InternGroups partitions interns for the company tabs.
type InternGroups struct {
	Ongoing   []models.Intern `json:"ongoing"`
	Completed []models.Intern `json:"completed"`
}

// GroupInterns splits interns into ongoing (report missing or not yet
// evaluated) and completed (approved). A record with any other status
// value lands in neither group. Input order is preserved within each
// group.
func GroupInterns(interns []models.Intern) InternGroups {
	groups := InternGroups{
		Ongoing:   []models.Intern{},
		Completed: []models.Intern{},
	}
	for _, intern := range interns {
		switch intern.Status {
		case models.ReviewReportMissing, models.ReviewNoReportMissing:
			groups.Ongoing = append(groups.Ongoing, intern)
		case models.ReviewApproved:
			groups.Completed = append(groups.Completed, intern)
		}
	}
	return groups
}

// AllLocations is the sentinel that disables the location filter.
const AllLocations = "all"

// FilterJobs returns the postings matching both filters, in input order.
// The query matches case-insensitively against title, company and
// description; the location must match exactly unless it is the
// sentinel.
func FilterJobs(jobs []models.Job, query, location string) []models.Job {
	q := strings.ToLower(query)
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		matchesQuery := strings.Contains(strings.ToLower(job.Title), q) ||
			strings.Contains(strings.ToLower(job.Company), q) ||
			strings.Contains(strings.ToLower(job.Description), q)
		matchesLocation := location == AllLocations || job.Location == location
		if matchesQuery && matchesLocation {
			out = append(out, job)
		}
	}
	return out
}

// JobLocations returns the filter options: the sentinel first, then each
// distinct location in first-seen order.
func JobLocations(jobs []models.Job) []string {
	seen := map[string]bool{}
	out := []string{AllLocations}
	for _, job := range jobs {
		if !seen[job.Location] {
			seen[job.Location] = true
			out = append(out, job.Location)
		}
	}
	return out
}

// ReviewQueue groups a review collection by current status for the
// university panel. The panel shows the whole collection; only the
// pending bucket carries actionable records.
type ReviewQueue[T any] struct {
	Pending  []T `json:"pending"`
	Approved []T `json:"approved"`
	Rejected []T `json:"rejected"`
}

// QueueByStatus buckets items by lifecycle status, preserving input
// order within each bucket.
func QueueByStatus[T any](items []T, status func(T) models.LifecycleStatus) ReviewQueue[T] {
	queue := ReviewQueue[T]{
		Pending:  []T{},
		Approved: []T{},
		Rejected: []T{},
	}
	for _, item := range items {
		switch status(item) {
		case models.StatusApproved:
			queue.Approved = append(queue.Approved, item)
		case models.StatusRejected:
			queue.Rejected = append(queue.Rejected, item)
		default:
			queue.Pending = append(queue.Pending, item)
		}
	}
	return queue
}

// ApplicationQueue groups applications for the review screen.
func ApplicationQueue(apps []models.Application) ReviewQueue[models.Application] {
	return QueueByStatus(apps, func(a models.Application) models.LifecycleStatus { return a.Status })
}

// LogQueue groups logs for the review screen.
func LogQueue(logs []models.Log) ReviewQueue[models.Log] {
	return QueueByStatus(logs, func(l models.Log) models.LifecycleStatus { return l.Status })
}

// EvaluationView is the three-way display state of the evaluation
// section on the intern detail page.
type EvaluationView string

const (
	// EvaluationBlocked shows the missing-report notice and no form.
	EvaluationBlocked EvaluationView = "blocked"
	// EvaluationForm shows the actionable evaluation form.
	EvaluationForm EvaluationView = "form"
	// EvaluationResult shows the read-only verdict.
	EvaluationResult EvaluationView = "result"
)

// EvaluationState resolves the display state from the intern's review
// status and the presence of a verdict.
func EvaluationState(intern models.Intern) EvaluationView {
	switch {
	case intern.Status == models.ReviewReportMissing:
		return EvaluationBlocked
	case intern.Status == models.ReviewNoReportMissing && intern.Evaluation == nil:
		return EvaluationForm
	default:
		return EvaluationResult
	}
}
