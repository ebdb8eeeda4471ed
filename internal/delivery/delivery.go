// Package delivery records which slots ran, and in what order, so that two
// broadcasts can be compared by a single fingerprint.
package delivery

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Log is an append-only record of slot deliveries.
type Log struct {
	names []string
	d     *xxhash.Digest
}

func New() *Log {
	return &Log{d: xxhash.New()}
}

// Slot returns a func that records name each time it is called.
func (l *Log) Slot(name string) func() {
	return func() { l.Record(name) }
}

func (l *Log) Record(name string) {
	l.names = append(l.names, name)
	l.d.WriteString(name)
	l.d.WriteString("\x00")
}

// Names returns the recorded deliveries, oldest first.
func (l *Log) Names() []string {
	return append([]string(nil), l.names...)
}

func (l *Log) Len() int {
	return len(l.names)
}

// Sum64 fingerprints the delivery order recorded so far.
func (l *Log) Sum64() uint64 {
	return l.d.Sum64()
}

func (l *Log) Reset() {
	l.names = l.names[:0]
	l.d.Reset()
}

// Digest fingerprints an arbitrary sequence the same way Log does.
func Digest(names ...string) uint64 {
	d := xxhash.New()
	for _, name := range names {
		d.WriteString(name)
		d.WriteString("\x00")
	}
	return d.Sum64()
}

// Index names the i-th slot of a generated fan-out.
func Index(i int) string {
	return "slot-" + strconv.Itoa(i)
}
