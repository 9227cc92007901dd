package counter

import (
	"testing"
)

func TestWindowAccounting(t *testing.T) {
	c, err := New(3, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	seq := []byte("ACGTACGTAC") // L=10, k=3 → 8 windows
	got := c.CountChunk(seq)
	if total := got.Total(); total != 8 {
		t.Fatalf("total windows = %d, want 8", total)
	}
}

func TestInvalidSymbolSkipsWindows(t *testing.T) {
	c, _ := New(3, false)
	// One N at index 4 invalidates windows starting at 2, 3, 4.
	seq := []byte("ACGTNACGTA") // 8 candidate windows, 3 lost
	got := c.CountChunk(seq)
	if total := got.Total(); total != 5 {
		t.Fatalf("total windows = %d, want 5", total)
	}
	// Lowercase is not part of the strict alphabet either.
	if total := c.CountChunk([]byte("ACgTACG")).Total(); total != 3 {
		t.Fatalf("lowercase should invalidate windows, got total %d", total)
	}
}

func TestShortRecordYieldsNothing(t *testing.T) {
	c, _ := New(5, false)
	if got := c.CountChunk([]byte("ACGT")); len(got) != 0 {
		t.Fatalf("record shorter than k should produce no windows, got %v", got)
	}
	if got := c.CountChunk(nil); len(got) != 0 {
		t.Fatalf("empty record should produce no windows, got %v", got)
	}
}

func TestExactCounts(t *testing.T) {
	c, _ := New(2, false)
	got := c.CountChunk([]byte("AAAA"))
	key, _ := c.Coder().Encode([]byte("AA"))
	if got[key] != 3 {
		t.Fatalf("count(AA) = %d, want 3", got[key])
	}
	if len(got) != 1 {
		t.Fatalf("expected a single distinct key, got %d", len(got))
	}
}

func TestCanonicalFoldsStrands(t *testing.T) {
	canon, _ := New(4, true)
	raw, _ := New(4, false)

	fwd := canon.CountChunk([]byte("AAAACC"))
	rev := canon.CountChunk([]byte("GGTTTT")) // reverse complement of AAAACC
	if len(fwd) != len(rev) {
		t.Fatalf("canonical counts differ in size: %d vs %d", len(fwd), len(rev))
	}
	for k, v := range fwd {
		if rev[k] != v {
			t.Errorf("canonical counts differ for key %d: %d vs %d", k, v, rev[k])
		}
	}

	rawFwd := raw.CountChunk([]byte("AAAACC"))
	rawRev := raw.CountChunk([]byte("GGTTTT"))
	same := true
	for k, v := range rawFwd {
		if rawRev[k] != v {
			same = false
			break
		}
	}
	if same {
		t.Error("raw (non-canonical) counts should differ across strands")
	}
}

func TestMergeMatchesWholeScan(t *testing.T) {
	c, _ := New(3, true)
	whole := c.CountChunk([]byte("ACGTACGTTTACGGG"))

	// Overlapping chunks with overlap k-1 cover every window exactly once.
	merged := make(Counts)
	seq := []byte("ACGTACGTTTACGGG")
	chunk, overlap := 6, 2
	step := chunk - overlap
	for off := 0; off < len(seq); off += step {
		end := off + chunk
		if end > len(seq) {
			end = len(seq)
		}
		Merge(merged, c.CountChunk(seq[off:end]))
		if end == len(seq) {
			break
		}
	}

	if len(whole) != len(merged) {
		t.Fatalf("chunked scan disagrees with whole scan: %d vs %d keys", len(merged), len(whole))
	}
	for k, v := range whole {
		if merged[k] != v {
			t.Errorf("key %d: chunked %d, whole %d", k, merged[k], v)
		}
	}
}
