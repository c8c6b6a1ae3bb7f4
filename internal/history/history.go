// Package history keeps the append-only audit trail of a ledger session.
package history

import "strings"

// Log is an ordered list of human-readable action entries.
// Entries are only ever appended; the log lives as long as its session.
type Log struct {
	entries []string
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Append records one action.
func (l *Log) Append(entry string) {
	l.entries = append(l.entries, entry)
}

// Entries returns a copy of all entries in insertion order.
func (l *Log) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// String joins all entries with newlines.
func (l *Log) String() string {
	return strings.Join(l.entries, "\n")
}
