// Package history provides a bounded, caller-owned log of composed
// outreach messages. The log is explicit state passed around by its owner
// rather than ambient session state; it is not safe for concurrent use,
// callers that share one across goroutines must synchronize.
package history

import "time"

// DefaultCapacity is used when a Log is created with a non-positive
// capacity.
const DefaultCapacity = 5

// Entry records one composed message.
type Entry struct {
	Timestamp      time.Time `json:"timestamp"`
	TargetPosition string    `json:"targetPosition"`
	Tone           string    `json:"tone"`
	Length         string    `json:"length"`
	Provider       string    `json:"provider"`
	Message        string    `json:"message"`
}

// Log keeps the most recent entries up to a fixed capacity, oldest first.
type Log struct {
	capacity int
	entries  []Entry
}

// NewLog returns a log retaining at most capacity entries.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity}
}

// Add appends an entry, evicting the oldest when the log is full.
func (l *Log) Add(entry Entry) {
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.capacity {
		overflow := len(l.entries) - l.capacity
		l.entries = append(l.entries[:0], l.entries[overflow:]...)
	}
}

// Entries returns a copy of the retained entries, oldest first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns a copy of the newest n entries, oldest first. n larger than
// the retained count returns everything.
func (l *Log) Last(n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Entry, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Cap returns the retention capacity.
func (l *Log) Cap() int {
	return l.capacity
}
