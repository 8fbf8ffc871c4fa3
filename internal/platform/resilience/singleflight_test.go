package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err, _ := g.Do("db-open", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_RetriesAfterError(t *testing.T) {
	var g SingleFlight
	boom := errors.New("boom")

	if _, err, _ := g.Do("k", func() (any, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected first call to fail with boom, got %v", err)
	}

	v, err, shared := g.Do("k", func() (any, error) { return 7, nil })
	if err != nil {
		t.Fatalf("expected second call to succeed, got %v", err)
	}
	if shared {
		t.Fatalf("expected second call to run on its own")
	}
	if v.(int) != 7 {
		t.Fatalf("unexpected value: %v", v)
	}
}

func TestSingleFlight_PanicReleasesKey(t *testing.T) {
	var g SingleFlight

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic to propagate")
			}
		}()
		_, _, _ = g.Do("k", func() (any, error) { panic("bad") })
	}()

	if _, err, _ := g.Do("k", func() (any, error) { return "ok", nil }); err != nil {
		t.Fatalf("expected key to be usable after panic, got %v", err)
	}
}
