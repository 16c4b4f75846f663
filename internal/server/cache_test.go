package server

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-lunar/internal/lunar"
)

func TestResultCachePutGet(t *testing.T) {
	c := newResultCache(4)

	info := lunar.Info{AgeDays: 12.3, Phase: "Waxing Gibbous"}
	c.Put("k", info)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, info, got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestResultCacheEviction(t *testing.T) {
	c := newResultCache(3)

	for i := 0; i < 3; i++ {
		c.Put(fmt.Sprintf("k%d", i), lunar.Info{AgeDays: float64(i)})
	}
	require.Equal(t, 3, c.Len())

	// The next insert crosses the bound and resets the map.
	c.Put("k3", lunar.Info{AgeDays: 3})
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("k3")
	assert.True(t, ok)
}

func TestCacheKeyStable(t *testing.T) {
	date := time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC)
	obs := lunar.Observer{LatDeg: 35.6544, LonDeg: 139.7447}

	assert.Equal(t, cacheKey(date, obs), cacheKey(date, obs))
	assert.Equal(t, "2024-03-25|35.6544|139.7447", cacheKey(date, obs))

	other := lunar.Observer{LatDeg: 35.6545, LonDeg: 139.7447}
	assert.NotEqual(t, cacheKey(date, obs), cacheKey(date, other))
}
