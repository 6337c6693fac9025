//go:build unit

package clock_test

import (
	"sync"
	"testing"
	"time"

	"library-service/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_IsUTC(t *testing.T) {
	now := clock.NewRealClock().Now()
	assert.Equal(t, time.UTC, now.Location())
}

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(start)
	assert.Equal(t, start, c.Now())

	c.Add(24 * time.Hour)
	assert.Equal(t, start.AddDate(0, 0, 1), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(time.Minute)
			_ = c.Now()
		}()
	}
	wg.Wait()
	assert.Equal(t, start.Add(10*time.Minute), c.Now())
}
