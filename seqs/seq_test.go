package seqs_test

import (
	"slices"
	"testing"

	"sift/seqs"
)

func TestFilter(t *testing.T) {
	input := slices.Values([]int{1, 2, 3, 4, 5, 6})
	got := slices.Collect(seqs.Filter(input, func(x int) bool { return x%2 == 0 }))
	if !slices.Equal(got, []int{2, 4, 6}) {
		t.Errorf("Filter mismatch: got %v", got)
	}
}

func TestMap(t *testing.T) {
	input := slices.Values([]int{1, 2, 3})
	got := slices.Collect(seqs.Map(input, func(x int) int { return x * 10 }))
	if !slices.Equal(got, []int{10, 20, 30}) {
		t.Errorf("Map mismatch: got %v", got)
	}
}

func TestTakeSkip(t *testing.T) {
	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{"Take", slices.Collect(seqs.Take(seqs.Range(0, 10, 1), 3)), []int{0, 1, 2}},
		{"Take zero", slices.Collect(seqs.Take(seqs.Range(0, 10, 1), 0)), nil},
		{"Take past end", slices.Collect(seqs.Take(seqs.Range(0, 2, 1), 5)), []int{0, 1}},
		{"Skip", slices.Collect(seqs.Skip(seqs.Range(0, 5, 1), 3)), []int{3, 4}},
		{"Skip everything", slices.Collect(seqs.Skip(seqs.Range(0, 3, 1), 5)), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestConcat(t *testing.T) {
	got := slices.Collect(seqs.Concat(
		slices.Values([]int{1, 2}),
		slices.Values([]int{}),
		slices.Values([]int{3}),
	))
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Concat mismatch: got %v", got)
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step int
		want             []int
	}{
		{"ascending", 1, 5, 1, []int{1, 2, 3, 4}},
		{"stepped", 0, 7, 2, []int{0, 2, 4, 6}},
		{"descending", 3, 0, -1, []int{3, 2, 1}},
		{"zero step", 0, 5, 0, nil},
		{"empty", 5, 5, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(seqs.Range(tt.start, tt.end, tt.step))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Range(%d, %d, %d) = %v, want %v", tt.start, tt.end, tt.step, got, tt.want)
			}
		})
	}
}

func TestSinks(t *testing.T) {
	if v, ok := seqs.First(seqs.Range(4, 9, 1)); !ok || v != 4 {
		t.Errorf("First = %d, %v; want 4, true", v, ok)
	}
	if _, ok := seqs.First(seqs.Range(0, 0, 1)); ok {
		t.Error("First on empty should report ok=false")
	}
	if v, ok := seqs.Last(seqs.Range(4, 9, 1)); !ok || v != 8 {
		t.Errorf("Last = %d, %v; want 8, true", v, ok)
	}
	if n := seqs.Count(seqs.Repeat("x", 7)); n != 7 {
		t.Errorf("Count = %d, want 7", n)
	}
}
