package store

import (
	"errors"

	"internship-management-api/models"
)

var (
	// ErrNotFound signals an absent record on operations that cannot
	// silently no-op (lookups by detail pages, review decisions).
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyDecided signals a review decision on a record whose
	// status has already left pending. The original UI merely hid the
	// buttons; here the guard lives at the data layer.
	ErrAlreadyDecided = errors.New("status already decided")

	// ErrInvalidStatus signals a decision target outside approved/rejected.
	ErrInvalidStatus = errors.New("invalid target status")
)

// ReviewStore is the store side of the shared review state machine. The
// application and log stores both implement it, so the same two
// operations serve either record kind.
type ReviewStore interface {
	// Decide moves a pending record to the given terminal status.
	Decide(id string, target models.LifecycleStatus) error
}

// Approve moves a pending record to approved. No other field changes.
func Approve(s ReviewStore, id string) error {
	return s.Decide(id, models.StatusApproved)
}

// Reject moves a pending record to rejected. No other field changes.
func Reject(s ReviewStore, id string) error {
	return s.Decide(id, models.StatusRejected)
}

// checkDecision validates a single lifecycle transition. Only
// pending -> approved and pending -> rejected are permitted.
func checkDecision(current, target models.LifecycleStatus) error {
	if target != models.StatusApproved && target != models.StatusRejected {
		return ErrInvalidStatus
	}
	if current.Decided() {
		return ErrAlreadyDecided
	}
	return nil
}
