package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces entity identifiers. Implementations must guarantee
// uniqueness within a running session.
type IDGenerator interface {
	// NextID returns a fresh identifier carrying the given prefix, e.g.
	// NextID("PO") -> "PO-1006".
	NextID(prefix string) string
}

// UUIDGenerator derives identifiers from random UUIDs. The suffix keeps the
// first eight hex characters, which is plenty for a single session.
type UUIDGenerator struct{}

// Verify interface compliance
var _ IDGenerator = (*UUIDGenerator)(nil)

// NewUUIDGenerator creates a UUID-backed ID generator
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NextID returns prefix plus a random eight-character suffix
func (g *UUIDGenerator) NextID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%s", prefix, suffix)
}

// SequenceGenerator produces monotonically increasing identifiers per prefix.
// Deterministic, so tests and demo runs get stable IDs.
type SequenceGenerator struct {
	mutex    sync.Mutex
	start    uint64
	counters map[string]uint64
}

// Verify interface compliance
var _ IDGenerator = (*SequenceGenerator)(nil)

// NewSequenceGenerator creates a sequence generator whose counters begin just
// above start, so NewSequenceGenerator(1005).NextID("PO") yields "PO-1006".
func NewSequenceGenerator(start uint64) *SequenceGenerator {
	return &SequenceGenerator{
		start:    start,
		counters: make(map[string]uint64),
	}
}

// NextID returns the next identifier in the prefix's sequence
func (g *SequenceGenerator) NextID(prefix string) string {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	next, ok := g.counters[prefix]
	if !ok {
		next = g.start
	}
	next++
	g.counters[prefix] = next
	return fmt.Sprintf("%s-%d", prefix, next)
}
