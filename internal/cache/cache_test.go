package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	if c == nil {
		t.Fatal("New returned nil")
	}
	if got := c.Stats().Capacity; got != 100 {
		t.Errorf("expected capacity 100, got %d", got)
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	createCalled := 0
	create := func() int {
		createCalled++
		return 100
	}

	if val := c.GetOrCreate("key1", create); val != 100 {
		t.Errorf("expected 100, got %d", val)
	}
	if val := c.GetOrCreate("key1", create); val != 100 {
		t.Errorf("expected 100, got %d", val)
	}
	if createCalled != 1 {
		t.Errorf("expected create to be called once, got %d", createCalled)
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 {
		t.Errorf("Stats hits/misses = %d/%d, want 1/1", s.Hits, s.Misses)
	}
	if s.HitRate != 0.5 {
		t.Errorf("HitRate = %v, want 0.5", s.HitRate)
	}
}

// fill stores value i under each key in keys.
func fill(c *Cache[int, int], keys ...int) {
	for _, k := range keys {
		c.GetOrCreate(k, func() int { return k })
	}
}

// cached reports whether key is present without storing anything new.
func cached(c *Cache[int, int], key int) bool {
	present := true
	c.GetOrCreate(key, func() int {
		present = false
		return key
	})
	return present
}

func TestCacheEviction(t *testing.T) {
	c := New[int, int](8)
	fill(c, 0, 1, 2, 3, 4, 5, 6, 7)
	// Touch the first entries so they survive eviction.
	fill(c, 0, 1, 2, 3)

	fill(c, 8)

	if got := c.Len(); got != 6 {
		t.Fatalf("Len after eviction = %d, want 6", got)
	}
	for _, k := range []int{0, 1, 2, 3, 8} {
		if !cached(c, k) {
			t.Errorf("recently used key %d was evicted", k)
		}
	}
}

func TestCacheUnlimited(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 1000; i++ {
		fill(c, i)
	}
	if c.Len() != 1000 {
		t.Errorf("expected 1000 entries, got %d", c.Len())
	}
}

func TestCacheClear(t *testing.T) {
	c := New[int, int](10)
	fill(c, 1, 2, 1)

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 {
		t.Errorf("Stats after Clear = %+v, want zero counters", s)
	}
	if cached(c, 1) {
		t.Error("key 1 survived Clear")
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](64)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := strconv.Itoa(i % 32)
				c.GetOrCreate(key, func() int { return i })
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 64 {
		t.Errorf("Len = %d exceeds soft limit", c.Len())
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[string, int](1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCreate(strconv.Itoa(i%100), func() int {
			return i
		})
	}
}
