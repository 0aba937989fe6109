package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponentialGrowthIsCapped(t *testing.T) {
	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	c := context.Background()

	for _, want := range []time.Duration{
		time.Millisecond,
		2 * time.Millisecond,
		4 * time.Millisecond,
		4 * time.Millisecond,
	} {
		assert.Equal(t, want, b.NextDuration)
		require.NoError(t, b.Backoff(c))
	}

	b.Reset()
	assert.Equal(t, time.Millisecond, b.NextDuration)
}

func TestLinearGrowth(t *testing.T) {
	b := NewLinear(time.Millisecond, 0)
	c := context.Background()

	assert.Equal(t, time.Millisecond, b.NextDuration)
	require.NoError(t, b.Backoff(c))
	assert.Equal(t, 2*time.Millisecond, b.NextDuration)
}

func TestBackoffStopsOnCancel(t *testing.T) {
	b := NewExponential(time.Hour, 0)
	c, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, b.Backoff(c), context.Canceled)
}
