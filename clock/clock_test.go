package clock_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/clock"
	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	clk := clock.NewManual(epoch)
	assert.Equal(t, epoch, clk.Now())

	now := clk.Advance(1500 * time.Millisecond)
	assert.Equal(t, epoch.Add(1500*time.Millisecond), now)
	assert.Equal(t, now, clk.Now())

	later := epoch.Add(time.Hour)
	clk.Set(later)
	assert.Equal(t, later, clk.Now())
}

func TestSystem(t *testing.T) {
	before := time.Now()
	now := clock.System{}.Now()
	assert.False(t, now.Before(before))
}
