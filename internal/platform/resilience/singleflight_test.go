package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight[string]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			got, err, _ := g.Do("https://cdn.example/logo.png", func() (string, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if got != "ok" {
				t.Errorf("unexpected value: %q", got)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_SequentialCallsRunAgain(t *testing.T) {
	var g SingleFlight[int]
	calls := 0

	for i := 0; i < 2; i++ {
		_, _, shared := g.Do("key", func() (int, error) {
			calls++
			return calls, nil
		})
		if shared {
			t.Fatalf("sequential call must not be shared")
		}
	}
	if calls != 2 {
		t.Fatalf("expected two executions, got %d", calls)
	}
}

func TestSingleFlight_Forget(t *testing.T) {
	var g SingleFlight[int]
	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_, _, _ = g.Do("key", func() (int, error) {
			close(started)
			<-release
			return 1, nil
		})
	}()
	<-started
	g.Forget("key")

	got, err, shared := g.Do("key", func() (int, error) { return 2, nil })
	close(release)
	if err != nil || shared || got != 2 {
		t.Fatalf("expected fresh call after Forget, got=%d shared=%v err=%v", got, shared, err)
	}
}
