package tempo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThrottleSuppressesRapidCalls(t *testing.T) {
	th := NewThrottle(50 * time.Millisecond)

	fired := 0
	for i := 0; i < 10; i++ {
		th.RateLimit(func() { fired++ })
	}

	assert.Equal(t, 1, fired, "only the first call should fire within the period")
}

func TestThrottleFiresWhenSpaced(t *testing.T) {
	th := NewThrottle(10 * time.Millisecond)

	fired := 0
	for i := 0; i < 5; i++ {
		th.RateLimit(func() { fired++ })
		time.Sleep(25 * time.Millisecond)
	}

	assert.Equal(t, 5, fired, "calls spaced beyond the period should all fire")
}

func TestThrottleZeroPeriodAlwaysFires(t *testing.T) {
	th := NewThrottle(0)

	fired := 0
	for i := 0; i < 10; i++ {
		th.RateLimit(func() { fired++ })
	}

	assert.Equal(t, 10, fired)
}

func TestThrottleFirstCallFires(t *testing.T) {
	th := NewThrottle(time.Hour)

	fired := false
	th.RateLimit(func() { fired = true })

	assert.True(t, fired, "a throttle that never fired must fire immediately")
}

func TestThrottleWrap(t *testing.T) {
	th := NewThrottle(30 * time.Millisecond)

	fired := 0
	limited := th.Wrap(func() { fired++ })

	for i := 0; i < 10; i++ {
		limited()
	}
	assert.Equal(t, 1, fired)

	time.Sleep(50 * time.Millisecond)
	limited()
	assert.Equal(t, 2, fired)
}
