package containers

import (
	"errors"
	"testing"
)

func TestRingQueueWrapsAround(t *testing.T) {
	q := NewRingQueue[int](3)
	for round := 0; round < 4; round++ {
		for i := 0; i < 3; i++ {
			if err := q.Enqueue(round*10 + i); err != nil {
				t.Fatalf("round %d enqueue %d: %s", round, i, err)
			}
		}
		if err := q.Enqueue(99); !errors.Is(err, ErrQueueFull) {
			t.Fatalf("expected ErrQueueFull, got %v", err)
		}
		if v, _ := q.Peek(); v != round*10 {
			t.Fatalf("peek: expected %d, got %d", round*10, v)
		}
		for i := 0; i < 3; i++ {
			v, err := q.Dequeue()
			if err != nil || v != round*10+i {
				t.Fatalf("round %d: expected %d, got %d (%v)", round, round*10+i, v, err)
			}
		}
	}
	if _, err := q.Dequeue(); !errors.Is(err, ErrQueueEmpty) {
		t.Fatalf("expected ErrQueueEmpty, got %v", err)
	}
	if q.Len() != 0 || !q.IsEmpty() {
		t.Fatalf("queue should be empty")
	}
}
