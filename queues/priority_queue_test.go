package queues_test

import (
	"cmp"
	"testing"

	"sift/queues"
)

// Task is a simple element type for ordering tests.
type Task struct {
	Name     string
	Priority int
}

func byPriority(a, b Task) int {
	return cmp.Compare(a.Priority, b.Priority)
}

func TestNewComparatorPriorityQueue_Validation(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewComparatorPriorityQueue should panic with nil comparator")
		}
	}()
	queues.NewComparatorPriorityQueue[int](10, nil)
}

func TestComparatorPriorityQueue_Ordering(t *testing.T) {
	tests := []struct {
		name     string
		compare  func(a, b Task) int
		inputs   []Task
		expected []string // expected Names in dequeue order
	}{
		{
			name:     "MinQueue",
			compare:  byPriority,
			inputs:   []Task{{"A", 3}, {"B", 1}, {"C", 4}, {"D", 2}},
			expected: []string{"B", "D", "A", "C"}, // 1, 2, 3, 4
		},
		{
			name:     "MaxQueue via inverted comparator",
			compare:  func(a, b Task) int { return byPriority(b, a) },
			inputs:   []Task{{"A", 3}, {"B", 1}, {"C", 4}, {"D", 2}},
			expected: []string{"C", "A", "D", "B"}, // 4, 3, 2, 1
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pq := queues.NewComparatorPriorityQueue(10, tt.compare)

			for _, task := range tt.inputs {
				pq.Enqueue(task)
			}

			if pq.Size() != len(tt.inputs) {
				t.Errorf("expected size %d, got %d", len(tt.inputs), pq.Size())
			}

			for _, expName := range tt.expected {
				val, ok := pq.Dequeue()
				if !ok {
					t.Errorf("expected dequeue %s, got nothing", expName)
				}
				if val.Name != expName {
					t.Errorf("expected name %s, got %s (prio %d)", expName, val.Name, val.Priority)
				}
			}

			if !pq.IsEmpty() {
				t.Error("queue should be empty")
			}
		})
	}
}

func TestComparatorPriorityQueue_PeekAndEmpty(t *testing.T) {
	pq := queues.NewComparatorPriorityQueue(0, cmp.Compare[int])

	if _, ok := pq.Peek(); ok {
		t.Error("Peek on empty queue should report ok=false")
	}
	if _, ok := pq.Dequeue(); ok {
		t.Error("Dequeue on empty queue should report ok=false")
	}

	pq.Enqueue(7)
	pq.Enqueue(3)

	if v, ok := pq.Peek(); !ok || v != 3 {
		t.Errorf("Peek = %d, %v; want 3, true", v, ok)
	}
	if pq.Size() != 2 {
		t.Errorf("Peek must not remove; size = %d, want 2", pq.Size())
	}

	if v, _ := pq.Dequeue(); v != 3 {
		t.Errorf("Dequeue = %d, want 3", v)
	}
	if v, _ := pq.Dequeue(); v != 7 {
		t.Errorf("Dequeue = %d, want 7", v)
	}
}
