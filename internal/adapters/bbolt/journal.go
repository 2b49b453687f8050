// Package bbolt implements the ports.Journal interface using bbolt
// (embedded B+ tree). Each watch root gets its own top-level bucket keyed
// by the root path; events are JSON values under a monotonic sequence
// number. Appends are transactional — a crash mid-write cannot corrupt
// previously committed events.
package bbolt

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/corey/lookout/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Journal implements ports.Journal backed by bbolt.
type Journal struct {
	db *bolt.DB
}

// NewJournal opens (or creates) a bbolt database at the given path.
func NewJournal(path string) (*Journal, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close closes the underlying bbolt database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Append records one event under the given watch root.
func (j *Journal) Append(root string, ev ports.Event) error {
	val, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	return j.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(root))
		if err != nil {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		var key [8]byte
		binary.BigEndian.PutUint64(key[:], seq)
		return b.Put(key[:], val)
	})
}

// Recent returns up to n events for a root, newest first. A zero or
// negative n yields no events.
func (j *Journal) Recent(root string, n int) ([]ports.Event, error) {
	if n < 0 {
		n = 0
	}
	events := make([]ports.Event, 0, n)
	err := j.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(root))
		if b == nil {
			return nil // no history for this root
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil && len(events) < n; k, v = c.Prev() {
			var ev ports.Event
			if err := json.Unmarshal(v, &ev); err != nil {
				return fmt.Errorf("decode event %x: %w", k, err)
			}
			events = append(events, ev)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}
