package node

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// TraceStore records every completed signing session the simulator has
// processed, keyed by a monotonically increasing sequence number. It exists
// for replay/debugging of the simulator, not as part of the device itself.
var bucketTraces = []byte("sign_traces_by_seq")

type TraceStore struct {
	db *bolt.DB
}

// Trace is one recorded SIGN_TX outcome.
type Trace struct {
	Seq        uint64    `json:"seq"`
	Time       time.Time `json:"time"`
	Network    string    `json:"network"`
	BIP32Path  []uint32  `json:"bip32_path"`
	StatusWord uint16    `json:"status_word"`
	Fields     []string  `json:"fields,omitempty"` // rendered "label: value" lines
}

func OpenTraceStore(path string) (*TraceStore, error) {
	if path == "" {
		return nil, fmt.Errorf("trace path required")
	}
	bdb, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt: %w", err)
	}
	if err := bdb.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketTraces)
		return err
	}); err != nil {
		bdb.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &TraceStore{db: bdb}, nil
}

func (s *TraceStore) Close() error { return s.db.Close() }

// Append stores t under the next sequence number and returns it.
func (s *TraceStore) Append(t Trace) (uint64, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTraces)
		next, err := b.NextSequence()
		if err != nil {
			return err
		}
		t.Seq = next
		seq = next
		raw, err := json.Marshal(t)
		if err != nil {
			return err
		}
		return b.Put(seqKey(next), raw)
	})
	if err != nil {
		return 0, err
	}
	return seq, nil
}

// Recent returns up to limit traces, most recent first.
func (s *TraceStore) Recent(limit int) ([]Trace, error) {
	var out []Trace
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketTraces).Cursor()
		for k, v := c.Last(); k != nil && len(out) < limit; k, v = c.Prev() {
			var t Trace
			if err := json.Unmarshal(v, &t); err != nil {
				return err
			}
			out = append(out, t)
		}
		return nil
	})
	return out, err
}

func seqKey(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}
