//go:build !integration

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSharded_ShardCount(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{"default when zero", 0, 16},
		{"default when negative", -1, 16},
		{"rounds 3 up to 4", 3, 4},
		{"exact power of two", 8, 8},
		{"rounds 5 up to 8", 5, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewSharded[string](100, time.Minute, tt.numShards)
			defer c.Stop()
			assert.Equal(t, tt.wantShards, c.ShardCount())
		})
	}
}

func TestSharded_GetSet(t *testing.T) {
	c := NewSharded[int](100, time.Minute, 4)
	defer c.Stop()

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 3)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	c.Invalidate("a")
	_, ok = c.Get("a")
	assert.False(t, ok)

	m := c.Metrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(2), m.Misses)
	assert.Equal(t, 1, m.Size)
	assert.Equal(t, 100, m.Capacity)
}

func TestSharded_Expiry(t *testing.T) {
	c := NewSharded[string](10, 20*time.Millisecond, 1)
	defer c.Stop()

	c.Set("k", "v")
	time.Sleep(40 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Zero(t, c.Metrics().Size)
}

func TestSharded_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewSharded[int](2, time.Minute, 1)
	defer c.Stop()

	c.Set("a", 1)
	c.Set("b", 2)
	_, _ = c.Get("a")
	c.Set("c", 3)

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	_, okC := c.Get("c")
	assert.True(t, okA)
	assert.False(t, okB, "b was least recently used")
	assert.True(t, okC)
	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestSharded_Clear(t *testing.T) {
	c := NewSharded[int](10, time.Minute, 2)
	defer c.Stop()

	c.Set("a", 1)
	_, _ = c.Get("a")
	c.Clear()

	assert.Equal(t, Metrics{Capacity: 10}, c.Metrics())
}

func TestSharded_StopTwice(t *testing.T) {
	c := NewSharded[int](10, time.Minute, 2)
	c.Stop()
	assert.NotPanics(t, c.Stop)
}

func TestSharded_Concurrent(t *testing.T) {
	c := NewSharded[int](1000, time.Minute, 8)
	defer c.Stop()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", i%50)
				c.Set(key, g)
				_, _ = c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Metrics().Size, 1000)
}
