package button

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func pulseSamples(d *Debouncer, n int) []int {
	var at []int
	for i := 1; i <= n; i++ {
		d.Sample(true)
		for d.Read() {
			at = append(at, i)
		}
	}
	return at
}

func TestHeldButtonRepeats(t *testing.T) {
	d := New(Config{Debounce: 1, RepeatThreshold: 10, RepeatInterval: 5})
	require.Equal(t, []int{1, 11, 16, 21}, pulseSamples(d, 25))
	require.Equal(t, Repeating, d.State())
}

func TestShortHoldEmitsSinglePulse(t *testing.T) {
	d := New(DefaultConfig())
	require.Equal(t, []int{1}, pulseSamples(d, 10))
	require.Equal(t, Pressed, d.State())
}

func TestReadIsEdgeTriggered(t *testing.T) {
	d := New(DefaultConfig())
	d.Sample(true)
	require.True(t, d.Read())
	require.False(t, d.Read())
	d.Sample(true)
	require.False(t, d.Read(), "holding without reaching the threshold must not pulse again")
}

func TestReleaseResetsAndDropsRepeats(t *testing.T) {
	d := New(Config{Debounce: 1, RepeatThreshold: 2, RepeatInterval: 1})
	for i := 0; i < 6; i++ {
		d.Sample(true)
	}
	require.True(t, d.Read())
	d.Sample(false)
	require.Equal(t, Released, d.State())
	require.False(t, d.Read())

	require.Equal(t, []int{1}, pulseSamples(d, 2), "a new press starts a fresh cycle")
}

func TestQuickTapSurvivesRelease(t *testing.T) {
	d := New(DefaultConfig())
	d.Sample(true)
	d.Sample(false)
	require.True(t, d.Read())
	require.False(t, d.Read())
}

func TestDebounceNeedsConsecutiveSamples(t *testing.T) {
	d := New(Config{Debounce: 3, RepeatThreshold: 10, RepeatInterval: 5})
	d.Sample(true)
	require.Equal(t, DebouncingPress, d.State())
	d.Sample(true)
	d.Sample(false)
	require.False(t, d.Read(), "bounce shorter than the debounce window is ignored")

	d.Sample(true)
	d.Sample(true)
	require.False(t, d.Read())
	d.Sample(true)
	require.Equal(t, Pressed, d.State())
	require.True(t, d.Read())
}

func TestNewFillsDefaults(t *testing.T) {
	d := New(Config{})
	require.Equal(t, DefaultConfig(), d.cfg)
}
