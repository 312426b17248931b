package analyzer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimer(t *testing.T) {
	t.Run("records named runs", func(t *testing.T) {
		timer := NewTimer()
		err := timer.TimeRun("fast", func() error {
			time.Sleep(time.Millisecond)
			return nil
		})
		require.NoError(t, err)

		assert.Contains(t, timer.Results(), "fast executed in")
	})

	t.Run("keeps the fastest observation per name", func(t *testing.T) {
		timer := NewTimer()
		_ = timer.TimeRun("run", func() error {
			time.Sleep(80 * time.Millisecond)
			return nil
		})
		_ = timer.TimeRun("run", func() error { return nil })

		results := timer.Results()
		assert.NotContains(t, results, "8")
	})

	t.Run("propagates the run error", func(t *testing.T) {
		timer := NewTimer()
		boom := errors.New("boom")
		err := timer.TimeRun("failing", func() error { return boom })
		assert.ErrorIs(t, err, boom)
	})
}
