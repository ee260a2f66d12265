package store

import (
	"strings"

	"github.com/google/uuid"
)

// newID returns a short unique identifier. Records live only for the
// process lifetime and counts stay in the low hundreds, so a truncated
// UUID leaves collision probability negligible.
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
