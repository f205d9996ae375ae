package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/archer333/ModelSythesisWithES/internal/parallel"
)

func TestForCoversRange(t *testing.T) {
	counts := make([]int32, 1000)
	parallel.For(0, 1000, 8, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})
	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestForSequentialFallback(t *testing.T) {
	var got []int
	parallel.For(5, 10, 1, func(i int) {
		got = append(got, i)
	})
	want := []int{5, 6, 7, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("visited %v, want %v", got, want)
		}
	}
}

func TestForEmptyRange(t *testing.T) {
	var called int32
	parallel.For(3, 3, 4, func(i int) {
		atomic.AddInt32(&called, 1)
	})
	if called != 0 {
		t.Errorf("empty range invoked fn %d times", called)
	}
}

func TestNumWorkers(t *testing.T) {
	if n := parallel.NumWorkers(); n < 1 {
		t.Errorf("NumWorkers() = %d, want >= 1", n)
	}
}
