package node

import (
	"path/filepath"
	"testing"
)

func TestTraceStoreAppendAndRecent(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenTraceStore(filepath.Join(dir, "sessions.bolt"))
	if err != nil {
		t.Fatalf("OpenTraceStore: %v", err)
	}
	defer store.Close()

	for i := 0; i < 3; i++ {
		seq, err := store.Append(Trace{Network: "testnet", StatusWord: 0x9000, Fields: []string{"Fee: 1 XYM"}})
		if err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
		if seq == 0 {
			t.Fatalf("Append %d returned zero sequence", i)
		}
	}

	recent, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d traces, want 2", len(recent))
	}
	// Recent returns newest first: the third append's Seq must be the
	// largest, and it must come back first.
	if recent[0].Seq <= recent[1].Seq {
		t.Fatalf("traces not newest-first: %d then %d", recent[0].Seq, recent[1].Seq)
	}
}

func TestOpenTraceStoreRejectsEmptyPath(t *testing.T) {
	if _, err := OpenTraceStore(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
