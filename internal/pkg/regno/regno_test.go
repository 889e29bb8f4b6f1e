package regno

import (
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextFormat(t *testing.T) {
	gen := NewGenerator()
	got := gen.Next()

	require.True(t, strings.HasPrefix(got, Prefix))
	millis, err := strconv.ParseInt(strings.TrimPrefix(got, Prefix), 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().UnixMilli(), millis, float64(time.Minute.Milliseconds()))
}

func TestNextBumpsOnSameMillisecond(t *testing.T) {
	frozen := time.UnixMilli(1700000000000)
	gen := &Generator{now: func() time.Time { return frozen }}

	first := gen.Next()
	second := gen.Next()
	third := gen.Next()

	assert.Equal(t, Prefix+"1700000000000", first)
	assert.Equal(t, Prefix+"1700000000001", second)
	assert.Equal(t, Prefix+"1700000000002", third)
}

func TestNextNeverGoesBackwards(t *testing.T) {
	clock := time.UnixMilli(1700000000005)
	gen := &Generator{now: func() time.Time { return clock }}

	first := gen.Next()

	// Clock jumps backwards.
	clock = time.UnixMilli(1700000000001)
	second := gen.Next()

	assert.Equal(t, Prefix+"1700000000005", first)
	assert.Equal(t, Prefix+"1700000000006", second)
}

func TestNextUniqueUnderConcurrency(t *testing.T) {
	gen := NewGenerator()

	const goroutines = 50
	var wg sync.WaitGroup
	results := make(chan string, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- gen.Next()
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, goroutines)
	for got := range results {
		assert.False(t, seen[got], "duplicate registration number %s", got)
		seen[got] = true
	}
	assert.Len(t, seen, goroutines)
}
