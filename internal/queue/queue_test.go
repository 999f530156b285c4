package queue

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atomicstack/panel-control/internal/logging"
)

func TestDrainPreservesOrder(t *testing.T) {
	q := New(4)
	var got []string
	require.NoError(t, q.Push("a", func() { got = append(got, "a") }))
	require.NoError(t, q.Push("b", func() { got = append(got, "b") }))
	require.Equal(t, 2, q.Len())
	require.Equal(t, 2, q.Drain())
	require.Equal(t, []string{"a", "b"}, got)
	require.Equal(t, 0, q.Len())
	require.Equal(t, 0, q.Drain())
}

func TestPushRejectsWhenFull(t *testing.T) {
	q := New(2)
	ran := 0
	task := func() { ran++ }
	require.NoError(t, q.Push("1", task))
	require.NoError(t, q.Push("2", task))
	err := q.Push("3", task)
	require.ErrorIs(t, err, ErrFull)
	require.Equal(t, uint64(1), q.Rejected())

	require.Equal(t, 2, q.Drain(), "accepted tasks survive an overflow")
	require.Equal(t, 2, ran)
	require.NoError(t, q.Push("4", task), "capacity is available again after draining")
}

func TestCapacityRoundsUpToPowerOfTwo(t *testing.T) {
	require.Equal(t, 8, New(5).Cap())
	require.Equal(t, 1, New(1).Cap())
	require.Equal(t, DefaultCapacity, New(0).Cap())
}

func TestDrainRunsTasksPushedByTasks(t *testing.T) {
	q := New(2)
	var got []int
	require.NoError(t, q.Push("outer", func() {
		got = append(got, 1)
		require.NoError(t, q.Push("inner", func() { got = append(got, 2) }))
	}))
	require.Equal(t, 2, q.Drain())
	require.Equal(t, []int{1, 2}, got)
}

func TestDrainSurvivesPanickingTask(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "panel.log"))
	t.Cleanup(func() { logging.Configure("") })
	q := New(4)
	after := false
	require.NoError(t, q.Push("boom", func() { panic("boom") }))
	require.NoError(t, q.Push("after", func() { after = true }))
	require.Equal(t, 2, q.Drain())
	require.True(t, after)
	require.Equal(t, uint64(1), q.Executed())
}

func TestNilTaskIsIgnored(t *testing.T) {
	q := New(1)
	require.NoError(t, q.Push("nil", nil))
	require.Equal(t, 0, q.Len())
}

func TestConcurrentProducersSingleConsumer(t *testing.T) {
	const producers, perProducer = 4, 200
	q := New(16)
	var mu sync.Mutex
	seen := make(map[int]int)
	lastPerProducer := make([]int, producers)
	for i := range lastPerProducer {
		lastPerProducer[i] = -1
	}

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				id := p*perProducer + i
				seq := i
				for q.Push("work", func() {
					mu.Lock()
					seen[id]++
					if seq <= lastPerProducer[p] {
						t.Errorf("producer %d out of order: %d after %d", p, seq, lastPerProducer[p])
					}
					lastPerProducer[p] = seq
					mu.Unlock()
				}) != nil {
					// Full: let the consumer catch up.
				}
			}
		}(p)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for {
		q.Drain()
		select {
		case <-done:
			q.Drain()
			require.Len(t, seen, producers*perProducer)
			for id, n := range seen {
				require.Equalf(t, 1, n, "task %d ran %d times", id, n)
			}
			return
		default:
		}
	}
}

func TestLenStaysInRangeWhileDraining(t *testing.T) {
	q := New(4)
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				_ = q.Push("tick", func() {})
			}
		}
	}()
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				q.Drain()
			}
		}
	}()
	for i := 0; i < 20000; i++ {
		n := q.Len()
		require.GreaterOrEqual(t, n, 0)
		require.LessOrEqual(t, n, q.Cap())
	}
	close(stop)
	wg.Wait()
	q.Drain()
	require.Zero(t, q.Len())
}
