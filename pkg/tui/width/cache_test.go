// ABOUTME: Tests for the LRU memo behind the system wcwidth strategy
// ABOUTME: Covers hits, promotion on read, eviction order, and overwrite

package width

import "testing"

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()
	c := newCache(2)

	c.put("a", 1)
	c.put("b", 2)
	if _, ok := c.get("a"); !ok {
		t.Fatal("expected hit for a")
	}
	c.put("c", 3)

	if _, ok := c.get("b"); ok {
		t.Error("b should have been evicted")
	}
	if v, ok := c.get("a"); !ok || v != 1 {
		t.Errorf("get(a) = (%d, %v), want (1, true)", v, ok)
	}
	if v, ok := c.get("c"); !ok || v != 3 {
		t.Errorf("get(c) = (%d, %v), want (3, true)", v, ok)
	}
}

func TestCache_PutOverwrites(t *testing.T) {
	t.Parallel()
	c := newCache(4)

	c.put("k", 1)
	c.put("k", 7)
	if v, _ := c.get("k"); v != 7 {
		t.Errorf("get(k) = %d, want 7", v)
	}
	if n := c.len(); n != 1 {
		t.Errorf("len = %d, want 1", n)
	}
}
