// Package id generates opaque entity identifiers.
package id

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// New returns a process-unique identifier: a millisecond timestamp encoded in
// base 36 followed by a random suffix. Sorting new ids lexicographically
// roughly follows creation time within a session.
func New() string {
	prefix := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return prefix + suffix
}
