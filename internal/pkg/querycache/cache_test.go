package querycache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCachesValue(t *testing.T) {
	c := New(nil)
	calls := 0

	fetch := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	got, err := Get(context.Background(), c, "team:public", ListRead(), fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	got, err = Get(context.Background(), c, "team:public", ListRead(), fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, calls, "second read must be served from cache")
}

func TestGetDeduplicatesConcurrentFetches(t *testing.T) {
	c := New(nil)

	var calls int32
	release := make(chan struct{})
	fetch := func(ctx context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 42, nil
	}

	const readers = 8
	var wg sync.WaitGroup
	results := make([]int, readers)
	errs := make([]error, readers)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Get(context.Background(), c, "events:upcoming", SingletonRead(), fetch)
		}(i)
	}

	// Let every reader reach the singleflight gate before the fetch returns.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < readers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, 42, results[i])
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent identical reads must share one fetch")
}

func TestErrorsAreNotCached(t *testing.T) {
	c := New(nil)
	calls := 0

	fetch := func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("backend down")
		}
		return "ok", nil
	}

	_, err := Get(context.Background(), c, "gallery:public", SingletonRead(), fetch)
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())

	got, err := Get(context.Background(), c, "gallery:public", SingletonRead(), fetch)
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 2, calls)
}

func TestScopeInvalidationDropsAllPrefixedKeys(t *testing.T) {
	c := New(nil)
	c.RegisterScope("events", "events:")
	c.RegisterScope("team", "team:")

	fetch := func(v string) func(context.Context) (string, error) {
		return func(ctx context.Context) (string, error) { return v, nil }
	}

	for key, v := range map[Key]string{
		"events:upcoming": "u",
		"events:past":     "p",
		"team:public":     "t",
	} {
		_, err := Get(context.Background(), c, key, SingletonRead(), fetch(v))
		require.NoError(t, err)
	}
	require.Equal(t, 3, c.Len())

	c.Invalidate("events")
	assert.Equal(t, 1, c.Len(), "both keyed event variants must be dropped")

	// The surviving entry is still served without a refetch.
	got, err := Get(context.Background(), c, "team:public", SingletonRead(), func(ctx context.Context) (string, error) {
		t.Fatal("team read must not refetch")
		return "", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "t", got)
}

func TestInvalidateUnknownScopeIsNoop(t *testing.T) {
	c := New(nil)
	c.store("team:public", "t")

	c.Invalidate("no-such-scope")
	assert.Equal(t, 1, c.Len())
}

func TestInvalidateKey(t *testing.T) {
	c := New(nil)
	c.store("profiles:7", "p7")
	c.store("profiles:8", "p8")

	c.InvalidateKey("profiles:7")
	assert.Equal(t, 1, c.Len())
	_, ok := c.lookup("profiles:7")
	assert.False(t, ok)
}

func TestReadyGate(t *testing.T) {
	var ready atomic.Bool
	c := New(ready.Load)

	_, err := Get(context.Background(), c, "resources:public", SingletonRead(), func(ctx context.Context) (string, error) {
		t.Fatal("fetch must not run before ready")
		return "", nil
	})
	assert.ErrorIs(t, err, ErrNotReady)

	ready.Store(true)
	got, err := Get(context.Background(), c, "resources:public", SingletonRead(), func(ctx context.Context) (string, error) {
		return "r", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "r", got)
}

func TestListReadRetriesWithBackoff(t *testing.T) {
	c := New(nil)
	calls := 0

	opts := Options{MaxRetries: 2, Backoff: 5 * time.Millisecond}
	got, err := Get(context.Background(), c, "announcements:public", opts, func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, calls)
}

func TestSingletonReadDoesNotRetry(t *testing.T) {
	c := New(nil)
	calls := 0
	sentinel := errors.New("gone")

	_, err := Get(context.Background(), c, "profiles:1", SingletonRead(), func(ctx context.Context) (string, error) {
		calls++
		return "", sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
}

func TestFetchSurvivesCallerCancellation(t *testing.T) {
	c := New(nil)
	ctx, cancel := context.WithCancel(context.Background())

	got, err := Get(ctx, c, "projects:public", SingletonRead(), func(fctx context.Context) (string, error) {
		cancel()
		// The flight may be shared by several waiters, so the first
		// caller's cancellation must not reach the backend call.
		if fctx.Err() != nil {
			return "", fctx.Err()
		}
		return "complete", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "complete", got)
	assert.Equal(t, 1, c.Len())
}

func TestInvalidateDuringFetchDiscardsStaleResult(t *testing.T) {
	c := New(nil)
	c.RegisterScope("team", "team:")

	fetching := make(chan struct{})
	release := make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		got, err := Get(context.Background(), c, "team:public", SingletonRead(), func(ctx context.Context) (string, error) {
			close(fetching)
			<-release
			return "pre-mutation", nil
		})
		// The in-flight read still gets the value it started for.
		assert.NoError(t, err)
		assert.Equal(t, "pre-mutation", got)
	}()

	<-fetching
	c.Invalidate("team")
	close(release)
	<-done

	// The invalidated flight must not have been cached; the next read
	// refetches and sees the post-mutation state.
	got, err := Get(context.Background(), c, "team:public", SingletonRead(), func(ctx context.Context) (string, error) {
		return "post-mutation", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "post-mutation", got)
}

func TestInvalidateKeyDuringFetchDiscardsStaleResult(t *testing.T) {
	c := New(nil)

	fetching := make(chan struct{})
	release := make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = Get(context.Background(), c, "profiles:7", SingletonRead(), func(ctx context.Context) (string, error) {
			close(fetching)
			<-release
			return "old-profile", nil
		})
	}()

	<-fetching
	c.InvalidateKey("profiles:7")
	close(release)
	<-done

	got, err := Get(context.Background(), c, "profiles:7", SingletonRead(), func(ctx context.Context) (string, error) {
		return "new-profile", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "new-profile", got)
}

func TestTypeMismatchDropsEntry(t *testing.T) {
	c := New(nil)
	c.store("team:public", "not-an-int")

	got, err := Get(context.Background(), c, "team:public", SingletonRead(), func(ctx context.Context) (int, error) {
		return 5, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}
