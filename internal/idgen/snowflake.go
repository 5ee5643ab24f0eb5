// Package idgen produces identifiers that stay unique for the lifetime of the
// process: snowflake numbers and the meal history entry IDs built from them.
package idgen

import (
	"fmt"
	"sync"
	"time"
)

const (
	workerIDBits      = 5
	datacenterIDBits  = 5
	sequenceBits      = 12
	maxWorkerID       = -1 ^ (-1 << workerIDBits)
	maxDatacenterID   = -1 ^ (-1 << datacenterIDBits)
	maxSequence       = -1 ^ (-1 << sequenceBits)
	workerIDShift     = sequenceBits
	datacenterIDShift = sequenceBits + workerIDBits
	timestampShift    = sequenceBits + workerIDBits + datacenterIDBits
	customEpoch       = 1704067200000 // 2024-01-01T00:00:00Z
)

type Generator struct {
	mu            sync.Mutex
	now           func() time.Time
	datacenterID  int64
	workerID      int64
	sequence      int64
	lastTimestamp int64
}

func NewGenerator(datacenterID, workerID int64) (*Generator, error) {
	if datacenterID < 0 || datacenterID > maxDatacenterID {
		return nil, fmt.Errorf("datacenter ID must be between 0 and %d", maxDatacenterID)
	}

	if workerID < 0 || workerID > maxWorkerID {
		return nil, fmt.Errorf("worker ID must be between 0 and %d", maxWorkerID)
	}

	return &Generator{
		now:          time.Now,
		datacenterID: datacenterID,
		workerID:     workerID,
	}, nil
}

// NextID returns a number greater than every ID this generator returned
// before. A clock that steps backwards is tolerated by reusing the last
// timestamp.
func (g *Generator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	timestamp := g.currentTimestamp()
	if timestamp < g.lastTimestamp {
		timestamp = g.lastTimestamp
	}

	if timestamp == g.lastTimestamp {
		g.sequence = (g.sequence + 1) & maxSequence
		if g.sequence == 0 {
			// Sequence exhausted within this millisecond; borrow the next one.
			timestamp++
		}
	} else {
		g.sequence = 0
	}

	g.lastTimestamp = timestamp

	return (timestamp << timestampShift) |
		(g.datacenterID << datacenterIDShift) |
		(g.workerID << workerIDShift) |
		g.sequence
}

func (g *Generator) currentTimestamp() int64 {
	return g.now().UnixMilli() - customEpoch
}
