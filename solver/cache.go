package solver

import (
	"hash/fnv"

	"github.com/katalvlaran/nonogram/line"
)

// lineCache memoizes skim/scrub results keyed by which lane was
// processed, which operation ran, and a hash of the line's cell masks
// before the call. A lane's clue sequence never changes during a solve,
// so (lane identity, op, mask snapshot) stands in for the spec's (clue
// sequence, bitmask snapshot) key. It is call-scoped: built fresh per
// Solve invocation, never shared across solves.
//
// A hit replays the cached post-call line state onto the live view
// rather than skipping the call outright, so memoization is exact
// regardless of how many times an unchanged lane is speculatively
// re-queued by cross-axis wake-up.
type lineCache struct {
	entries map[cacheKey]cacheEntry
}

type cacheKey struct {
	row   bool
	index int
	op    string
	hash  uint64
}

type cacheEntry struct {
	report *line.Report
	result line.SliceView
}

func newLineCache() *lineCache {
	return &lineCache{entries: make(map[cacheKey]cacheEntry)}
}

func snapshotHash(v line.View) uint64 {
	h := fnv.New64a()
	var buf [4]byte
	for i := 0; i < v.Len(); i++ {
		raw := v.Get(i).Raw()
		buf[0] = byte(raw)
		buf[1] = byte(raw >> 8)
		buf[2] = byte(raw >> 16)
		buf[3] = byte(raw >> 24)
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// lookup returns a cached entry for lane/op/v's current content, and the
// key to store under if this turns out to be a miss.
func (c *lineCache) lookup(lane *LaneState, op string, v line.View) (cacheEntry, bool, cacheKey) {
	key := cacheKey{row: lane.Row, index: lane.Index, op: op, hash: snapshotHash(v)}
	entry, ok := c.entries[key]
	return entry, ok, key
}

func (c *lineCache) store(key cacheKey, report *line.Report, v line.View) {
	c.entries[key] = cacheEntry{report: report, result: line.Snapshot(v)}
}

// replay copies a cached post-call result onto v.
func replay(result line.SliceView, v line.View) {
	for i, c := range result {
		v.Set(i, c)
	}
}
