package term

import "testing"

func TestCacheInsertAndContains(t *testing.T) {
	c := EmptyCache.Insert(3)
	present, known := c.Contains(3)
	if !known || !present {
		t.Fatalf("expected index 3 present and known, got present=%v known=%v", present, known)
	}
	present, known = c.Contains(4)
	if !known || present {
		t.Fatalf("expected index 4 absent and known, got present=%v known=%v", present, known)
	}
}

func TestCacheContainsDefinitelyAbsentForLargeIndexOnPreciseCache(t *testing.T) {
	c := EmptyCache.Insert(2)
	present, known := c.Contains(16)
	if !known || present {
		t.Fatalf("expected index 16 to be known absent on a non-unknown cache, got present=%v known=%v", present, known)
	}
}

func TestCacheContainsUnknownForLargeIndexOnUnknownCache(t *testing.T) {
	_, known := UnknownCache.Contains(16)
	if known {
		t.Fatalf("expected index 16 to be unanswerable once the cache itself is unknown")
	}
}

func TestCacheInsertAllSmallIndicesReachesUnknownBits(t *testing.T) {
	c := EmptyCache
	for i := DeBruijn(0); i < 16; i++ {
		c = c.Insert(i)
	}
	if c != UnknownCache {
		t.Fatalf("expected inserting all 16 small indices to produce the same bit pattern as UnknownCache, got %#x", uint16(c))
	}
}

func TestCacheInsertBeyondRangeForcesUnknown(t *testing.T) {
	c := EmptyCache.Insert(16)
	if !c.IsUnknown() {
		t.Fatalf("expected inserting index 16 to force the unknown state")
	}
}

func TestCacheUnion(t *testing.T) {
	a := EmptyCache.Insert(0)
	b := EmptyCache.Insert(1)
	u := a.Union(b)
	for _, i := range []DeBruijn{0, 1} {
		present, known := u.Contains(i)
		if !known || !present {
			t.Fatalf("expected index %d present after union", i)
		}
	}
}

func TestCacheUnionWithUnknownIsUnknown(t *testing.T) {
	a := EmptyCache.Insert(0)
	u := a.Union(UnknownCache)
	if !u.IsUnknown() {
		t.Fatalf("expected union with UnknownCache to be unknown")
	}
}

func TestCacheShiftRight(t *testing.T) {
	c := EmptyCache.Insert(0).Insert(3)
	shifted := c.ShiftRight(1)
	if present, known := shifted.Contains(2); !known || !present {
		t.Fatalf("expected index 2 present after shifting index 3 right by 1")
	}
	if present, known := shifted.Contains(0); !known || present {
		t.Fatalf("expected index -1 (shifted out) to be absent, not present")
	}
}

func TestCacheShiftRightPreservesUnknown(t *testing.T) {
	if !UnknownCache.ShiftRight(4).IsUnknown() {
		t.Fatalf("expected shifting UnknownCache to remain unknown")
	}
}

func TestCacheShiftRightByFullWidthIsEmpty(t *testing.T) {
	c := EmptyCache.Insert(5)
	if c.ShiftRight(16) != EmptyCache {
		t.Fatalf("expected shifting by the full cache width to produce EmptyCache")
	}
}
