package idgen

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		name         string
		datacenterID int64
		workerID     int64
		shouldError  bool
	}{
		{"valid IDs", 0, 0, false},
		{"valid max IDs", 31, 31, false},
		{"invalid datacenter negative", -1, 0, true},
		{"invalid datacenter too large", 32, 0, true},
		{"invalid worker negative", 0, -1, true},
		{"invalid worker too large", 0, 32, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewGenerator(tt.datacenterID, tt.workerID)

			if tt.shouldError {
				if err == nil {
					t.Errorf("expected error for datacenter=%d, worker=%d, got nil", tt.datacenterID, tt.workerID)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gen.datacenterID != tt.datacenterID || gen.workerID != tt.workerID {
				t.Errorf("generator = (%d, %d), want (%d, %d)", gen.datacenterID, gen.workerID, tt.datacenterID, tt.workerID)
			}
		})
	}
}

func TestNextID_Increasing(t *testing.T) {
	gen, _ := NewGenerator(1, 1)

	prev := gen.NextID()
	for i := 0; i < 10000; i++ {
		id := gen.NextID()
		if id <= prev {
			t.Fatalf("IDs not increasing: %d after %d", id, prev)
		}
		prev = id
	}
}

func TestNextID_FrozenClock(t *testing.T) {
	gen, _ := NewGenerator(1, 1)
	frozen := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	gen.now = func() time.Time { return frozen }

	// More IDs than the sequence holds in one millisecond.
	seen := make(map[int64]bool)
	for i := 0; i < maxSequence*3; i++ {
		id := gen.NextID()
		if seen[id] {
			t.Fatalf("duplicate ID %d at iteration %d", id, i)
		}
		seen[id] = true
	}
}

func TestNextID_ClockBackwards(t *testing.T) {
	gen, _ := NewGenerator(1, 1)
	now := time.Date(2026, 1, 1, 0, 0, 1, 0, time.UTC)
	gen.now = func() time.Time { return now }

	first := gen.NextID()
	now = now.Add(-time.Second)
	second := gen.NextID()

	if second <= first {
		t.Errorf("expected ID after clock step back to still increase: %d <= %d", second, first)
	}
}

func TestNextID_Concurrent(t *testing.T) {
	gen, _ := NewGenerator(1, 1)

	var mu sync.Mutex
	var wg sync.WaitGroup
	ids := make(map[int64]bool)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				id := gen.NextID()
				mu.Lock()
				if ids[id] {
					t.Errorf("duplicate ID: %d", id)
				}
				ids[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(ids) != 10000 {
		t.Errorf("expected 10000 unique IDs, got %d", len(ids))
	}
}

func TestIDStructure(t *testing.T) {
	gen, _ := NewGenerator(5, 10)
	id := gen.NextID()

	if dc := (id >> datacenterIDShift) & maxDatacenterID; dc != 5 {
		t.Errorf("datacenter ID in ID = %d, want 5", dc)
	}
	if w := (id >> workerIDShift) & maxWorkerID; w != 10 {
		t.Errorf("worker ID in ID = %d, want 10", w)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{9, "9"},
		{10, "A"},
		{35, "Z"},
		{36, "a"},
		{61, "z"},
		{62, "10"},
		{3844, "100"},
		{1234567890, "1LY7VK"},
		{9876543210, "AmOy42"},
		{-62, "10"},
	}

	for _, tt := range tests {
		if got := Encode(tt.input); got != tt.expected {
			t.Errorf("Encode(%d) = %s; want %s", tt.input, got, tt.expected)
		}
	}
}

func TestEntryID(t *testing.T) {
	gen, _ := NewGenerator(1, 1)
	at := time.UnixMilli(1760000000123)

	a := gen.EntryID(at)
	b := gen.EntryID(at)

	if !strings.HasPrefix(a, "1760000000123-") {
		t.Errorf("expected millisecond prefix, got %s", a)
	}
	if a == b {
		t.Errorf("expected distinct IDs for the same instant, got %s twice", a)
	}
}
