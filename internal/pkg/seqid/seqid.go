// Package seqid generates UUIDs whose leading bytes encode the creation
// instant, so primary keys insert in near-index order instead of landing on
// random pages.
package seqid

import (
	"time"

	"github.com/google/uuid"
)

// timestampBytes is the size of the embedded millisecond region.
const timestampBytes = 6

// New returns a random UUID with its first six bytes replaced by the current
// unix time in milliseconds (big-endian, truncated to 48 bits). The remaining
// ten bytes keep the entropy of a standard v4 UUID.
func New() uuid.UUID {
	return NewAt(time.Now())
}

// NewAt builds a sequential UUID stamped with t.
func NewAt(t time.Time) uuid.UUID {
	id := uuid.New()
	ms := uint64(t.UnixMilli()) & 0xFFFFFFFFFFFF
	for i := 0; i < timestampBytes; i++ {
		shift := uint(8 * (timestampBytes - 1 - i))
		id[i] = byte(ms >> shift)
	}
	return id
}

// Timestamp decodes the creation instant embedded in an identifier produced
// by New. The result has millisecond precision and is expressed in UTC.
func Timestamp(id uuid.UUID) time.Time {
	var ms uint64
	for i := 0; i < timestampBytes; i++ {
		ms = ms<<8 | uint64(id[i])
	}
	return time.UnixMilli(int64(ms)).UTC()
}
