package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameClock(t *testing.T) {
	base := time.Unix(100, 0)
	steps := []time.Duration{0, 20 * time.Millisecond, 30 * time.Millisecond, 40 * time.Millisecond}
	i := 0
	c := NewFrameClock()
	c.now = func() time.Time {
		base = base.Add(steps[i])
		i++
		return base
	}

	assert.Zero(t, c.Average())
	assert.InDelta(t, 1.0/60, c.Tick(1.0/60), 1e-12)
	assert.InDelta(t, 0.02, c.Tick(1.0/60), 1e-12)
	assert.InDelta(t, 0.03, c.Tick(1.0/60), 1e-12)
	assert.InDelta(t, 0.04, c.Tick(1.0/60), 1e-12)
	assert.Equal(t, 4, c.Frames())
	assert.Equal(t, 30*time.Millisecond, c.Average())
}

func TestRNGSeeded(t *testing.T) {
	a, b := NewRNG(9), NewRNG(9)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
	assert.Zero(t, NewRNG(0).IntN(0))
}
