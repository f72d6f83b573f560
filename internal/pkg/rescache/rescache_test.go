package rescache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sekolah-branding/internal/pkg/rescache"
)

func TestGetOrCompute_CachesWithinTTL(t *testing.T) {
	c := rescache.New(time.Minute)
	ctx := context.Background()
	var calls int32

	compute := func(context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		return "value", nil
	}

	v, err := c.GetOrCompute(ctx, "t1|en", "df=false", compute)
	assert.NoError(t, err)
	assert.Equal(t, "value", v)

	v, err = c.GetOrCompute(ctx, "t1|en", "df=false", compute)
	assert.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrCompute_ExpiryRecomputes(t *testing.T) {
	c := rescache.New(10 * time.Millisecond)
	ctx := context.Background()
	var calls int32

	compute := func(context.Context) (any, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}

	v, _ := c.GetOrCompute(ctx, "t1|en", "", compute)
	assert.Equal(t, 1, v)

	time.Sleep(20 * time.Millisecond)

	v, _ = c.GetOrCompute(ctx, "t1|en", "", compute)
	assert.Equal(t, 2, v, "a stale entry must trigger recomputation, never a stale return")
}

func TestGetOrCompute_SingleFlight(t *testing.T) {
	c := rescache.New(time.Minute)
	ctx := context.Background()

	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})

	compute := func(context.Context) (any, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-release
		}
		return "shared", nil
	}

	var wg sync.WaitGroup
	results := make([]any, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.GetOrCompute(ctx, "t1|en", "", compute)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	<-started
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent identical requests must share one computation")
	for _, v := range results {
		assert.Equal(t, "shared", v)
	}
}

func TestGetOrCompute_FailureIsNotCached(t *testing.T) {
	c := rescache.New(time.Minute)
	ctx := context.Background()
	var calls int32

	_, err := c.GetOrCompute(ctx, "t1|en", "", func(context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		return nil, errors.New("store timeout")
	})
	assert.Error(t, err)

	v, err := c.GetOrCompute(ctx, "t1|en", "", func(context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		return "ok", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestInvalidate_DiscardsStaleFill(t *testing.T) {
	c := rescache.New(time.Minute)
	ctx := context.Background()

	computing := make(chan struct{})
	release := make(chan struct{})

	done := make(chan any)
	go func() {
		v, _ := c.GetOrCompute(ctx, "t1|en", "", func(context.Context) (any, error) {
			close(computing)
			<-release
			return "stale", nil
		})
		done <- v
	}()

	<-computing
	// A write lands while the old resolution is still in flight.
	c.Invalidate("t1|en")
	close(release)
	assert.Equal(t, "stale", <-done)

	// The in-flight result must not have repopulated the cache.
	v, err := c.GetOrCompute(ctx, "t1|en", "", func(context.Context) (any, error) {
		return "fresh", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "fresh", v)
}

func TestInvalidate_DropsAllVariants(t *testing.T) {
	c := rescache.New(time.Minute)
	ctx := context.Background()
	var calls int32

	compute := func(context.Context) (any, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}

	_, _ = c.GetOrCompute(ctx, "t1|en", "a", compute)
	_, _ = c.GetOrCompute(ctx, "t1|en", "b", compute)
	_, _ = c.GetOrCompute(ctx, "t1|fr", "a", compute)
	assert.Equal(t, 3, c.Len())

	c.Invalidate("t1|en")
	assert.Equal(t, 1, c.Len(), "unrelated partitions stay cached")

	v, _ := c.GetOrCompute(ctx, "t1|en", "a", compute)
	assert.Equal(t, 4, v)
}

func TestInvalidate_Hook(t *testing.T) {
	c := rescache.New(time.Minute)

	var notified []string
	c.OnInvalidate = func(scope string) { notified = append(notified, scope) }

	c.Invalidate("t1|en")
	c.Drop("t1|fr")

	assert.Equal(t, []string{"t1|en"}, notified, "Drop must not re-fan-out")
}
