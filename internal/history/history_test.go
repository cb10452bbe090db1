package history

import (
	"fmt"
	"testing"
	"time"
)

func entry(msg string) Entry {
	return Entry{
		Timestamp:      time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC),
		TargetPosition: "Senior Developer",
		Tone:           "Professional",
		Length:         "standard",
		Provider:       "local",
		Message:        msg,
	}
}

func TestLogRetention(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		add      int
		wantLen  int
		wantCap  int
		oldest   string
		newest   string
	}{
		{
			name:     "under capacity keeps everything",
			capacity: 5,
			add:      3,
			wantLen:  3,
			wantCap:  5,
			oldest:   "msg-0",
			newest:   "msg-2",
		},
		{
			name:     "at capacity keeps everything",
			capacity: 5,
			add:      5,
			wantLen:  5,
			wantCap:  5,
			oldest:   "msg-0",
			newest:   "msg-4",
		},
		{
			name:     "over capacity evicts oldest",
			capacity: 5,
			add:      8,
			wantLen:  5,
			wantCap:  5,
			oldest:   "msg-3",
			newest:   "msg-7",
		},
		{
			name:     "non-positive capacity falls back to default",
			capacity: 0,
			add:      7,
			wantLen:  DefaultCapacity,
			wantCap:  DefaultCapacity,
			oldest:   "msg-2",
			newest:   "msg-6",
		},
		{
			name:     "capacity one keeps only the newest",
			capacity: 1,
			add:      4,
			wantLen:  1,
			wantCap:  1,
			oldest:   "msg-3",
			newest:   "msg-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := NewLog(tt.capacity)
			for i := 0; i < tt.add; i++ {
				log.Add(entry(fmt.Sprintf("msg-%d", i)))
			}

			if log.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", log.Len(), tt.wantLen)
			}
			if log.Cap() != tt.wantCap {
				t.Errorf("Cap() = %d, want %d", log.Cap(), tt.wantCap)
			}

			entries := log.Entries()
			if len(entries) != tt.wantLen {
				t.Fatalf("Entries() returned %d entries, want %d", len(entries), tt.wantLen)
			}
			if entries[0].Message != tt.oldest {
				t.Errorf("oldest = %q, want %q", entries[0].Message, tt.oldest)
			}
			if entries[len(entries)-1].Message != tt.newest {
				t.Errorf("newest = %q, want %q", entries[len(entries)-1].Message, tt.newest)
			}
		})
	}
}

func TestLogLast(t *testing.T) {
	log := NewLog(10)
	for i := 0; i < 6; i++ {
		log.Add(entry(fmt.Sprintf("msg-%d", i)))
	}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"last two", 2, []string{"msg-4", "msg-5"}},
		{"more than retained returns everything", 20, []string{"msg-0", "msg-1", "msg-2", "msg-3", "msg-4", "msg-5"}},
		{"zero returns empty", 0, []string{}},
		{"negative returns empty", -1, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := log.Last(tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("Last(%d) returned %d entries, want %d", tt.n, len(got), len(tt.want))
			}
			for i, want := range tt.want {
				if got[i].Message != want {
					t.Errorf("Last(%d)[%d].Message = %q, want %q", tt.n, i, got[i].Message, want)
				}
			}
		})
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	log := NewLog(3)
	log.Add(entry("original"))

	entries := log.Entries()
	entries[0].Message = "mutated"

	if log.Entries()[0].Message != "original" {
		t.Error("mutating the returned slice changed the log")
	}
}

func BenchmarkLogAdd(b *testing.B) {
	log := NewLog(5)
	e := entry("benchmark")
	for b.Loop() {
		log.Add(e)
	}
}
