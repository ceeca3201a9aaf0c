package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss on unknown key
	_, hit, err := c.Get(ctx, "missing")
	if err != nil || hit {
		t.Errorf("Get(missing) = hit=%v err=%v, want miss", hit, err)
	}

	// Round-trip
	payload := []byte(`{"total": 42}`)
	if err := c.Set(ctx, "met:search:cat", payload, time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "met:search:cat")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("Get should hit after Set")
	}
	if string(data) != string(payload) {
		t.Errorf("Get data = %q, want %q", data, payload)
	}

	// Delete
	if err := c.Delete(ctx, "met:search:cat"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "met:search:cat"); hit {
		t.Error("Get should miss after Delete")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("Delete(missing) error: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "short", []byte("data"), time.Millisecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, hit, err := c.Get(ctx, "short"); hit || err != nil {
		t.Errorf("expired entry: hit=%v err=%v, want miss", hit, err)
	}

	// TTL of 0 never expires
	if err := c.Set(ctx, "forever", []byte("data"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry with ttl 0 should not expire")
	}
}

func TestKey(t *testing.T) {
	k1 := Key("met", "search", "cat", 1)
	k2 := Key("met", "search", "cat", 1)
	if k1 != k2 {
		t.Error("Key should be deterministic")
	}
	if k3 := Key("met", "search", "cat", 2); k1 == k3 {
		t.Error("different parts should produce different keys")
	}
	if k4 := Key("other", "search", "cat", 1); k1 == k4 {
		t.Error("different prefixes should produce different keys")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	if h3 := Hash([]byte("world")); h1 == h3 {
		t.Error("different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length = %d, want 64", len(h1))
	}
}

func TestRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := Retry(ctx, 3, time.Millisecond, func() error {
			calls++
			return nil
		})
		if err != nil || calls != 1 {
			t.Errorf("err=%v calls=%d, want nil/1", err, calls)
		}
	})

	t.Run("retries retryable errors", func(t *testing.T) {
		calls := 0
		err := Retry(ctx, 3, time.Millisecond, func() error {
			calls++
			if calls < 3 {
				return Retryable(fmt.Errorf("transient"))
			}
			return nil
		})
		if err != nil || calls != 3 {
			t.Errorf("err=%v calls=%d, want nil/3", err, calls)
		}
	})

	t.Run("does not retry permanent errors", func(t *testing.T) {
		calls := 0
		permanent := fmt.Errorf("bad request")
		err := Retry(ctx, 3, time.Millisecond, func() error {
			calls++
			return permanent
		})
		if !errors.Is(err, permanent) || calls != 1 {
			t.Errorf("err=%v calls=%d, want permanent/1", err, calls)
		}
	})

	t.Run("gives up after attempts", func(t *testing.T) {
		calls := 0
		err := Retry(ctx, 2, time.Millisecond, func() error {
			calls++
			return Retryable(fmt.Errorf("still failing"))
		})
		if err == nil || calls != 2 {
			t.Errorf("err=%v calls=%d, want error/2", err, calls)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		err := Retry(cctx, 3, time.Minute, func() error {
			return Retryable(fmt.Errorf("transient"))
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	})
}

func TestIsRetryable(t *testing.T) {
	if IsRetryable(fmt.Errorf("plain")) {
		t.Error("plain error should not be retryable")
	}
	if !IsRetryable(Retryable(fmt.Errorf("wrapped"))) {
		t.Error("wrapped error should be retryable")
	}
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should be nil")
	}
	// Retryable survives fmt.Errorf wrapping
	wrapped := fmt.Errorf("context: %w", Retryable(fmt.Errorf("inner")))
	if !IsRetryable(wrapped) {
		t.Error("IsRetryable should unwrap the chain")
	}
}
