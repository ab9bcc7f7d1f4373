package ordering

import (
	"math/rand"
	"testing"
)

// assertPermutation fails unless order is a permutation of [0, n).
func assertPermutation(t *testing.T, order []int, n int) {
	t.Helper()
	if len(order) != n {
		t.Fatalf("order has %d elements, want %d", len(order), n)
	}
	seen := make(map[int]bool, n)
	for _, v := range order {
		if v < 0 || v >= n {
			t.Fatalf("order contains out-of-range index %d", v)
		}
		if seen[v] {
			t.Fatalf("order contains duplicate index %d", v)
		}
		seen[v] = true
	}
}

func TestNew_Identity(t *testing.T) {
	a := New(4)
	got := a.Order()
	for i, v := range got {
		if v != i {
			t.Errorf("Order()[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []int
	}{
		{"forward", 0, 2, []int{1, 2, 0, 3}},
		{"backward", 3, 0, []int{3, 0, 1, 2}},
		{"adjacent", 1, 2, []int{0, 2, 1, 3}},
		{"same", 2, 2, []int{0, 1, 2, 3}},
		{"from out of range", 7, 1, []int{0, 1, 2, 3}},
		{"to out of range", 1, -1, []int{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(4)
			a.Move(tt.from, tt.to)
			got := a.Order()
			assertPermutation(t, got, 4)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Order() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestSwap_AdjacentOnly(t *testing.T) {
	a := New(4)
	a.Swap(1, 2)
	if got := a.Order(); got[1] != 2 || got[2] != 1 {
		t.Errorf("adjacent swap failed: %v", got)
	}

	a = New(4)
	a.Swap(0, 3)
	if got := a.Order(); got[0] != 0 || got[3] != 3 {
		t.Errorf("non-adjacent swap should be a no-op: %v", got)
	}
}

func TestSwap_BoundariesAreNoOps(t *testing.T) {
	a := New(3)
	a.MoveUp(0)
	if got := a.Order(); got[0] != 0 {
		t.Errorf("moving the top item up should be a no-op: %v", got)
	}
	a.MoveDown(2)
	if got := a.Order(); got[2] != 2 {
		t.Errorf("moving the bottom item down should be a no-op: %v", got)
	}
}

func TestPermutationInvariant_RandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 6
	a := NewShuffled(n, rng)
	assertPermutation(t, a.Order(), n)

	for i := 0; i < 500; i++ {
		switch rng.Intn(3) {
		case 0:
			a.Move(rng.Intn(n+2)-1, rng.Intn(n+2)-1)
		case 1:
			a.MoveUp(rng.Intn(n + 2))
		default:
			a.MoveDown(rng.Intn(n+2) - 1)
		}
		assertPermutation(t, a.Order(), n)
	}
}

func TestDropTarget_Thirds(t *testing.T) {
	tests := []struct {
		from     int
		target   int
		fraction float64
		want     int
	}{
		// Dragging up: the target keeps its index while the item is out.
		{3, 1, 0.1, 1}, // top third lands above the target
		{3, 1, 0.5, 1}, // middle takes the target's slot
		{3, 1, 0.9, 2}, // bottom third lands below the target
		// Dragging down: removal pulls the target one slot up.
		{0, 2, 0.1, 1}, // top third lands above the target
		{0, 2, 0.5, 2}, // middle takes the target's slot
		{0, 2, 0.9, 2}, // bottom third lands below the target
		{1, 1, 0.9, 1}, // released over its own slot: stays put
	}
	for _, tt := range tests {
		if got := DropTarget(tt.from, tt.target, tt.fraction); got != tt.want {
			t.Errorf("DropTarget(%d, %d, %.1f) = %d, want %d", tt.from, tt.target, tt.fraction, got, tt.want)
		}
	}
}

func TestDrop_GestureComposition(t *testing.T) {
	arranged := func(a *Arrangement) []string {
		return a.Arranged([]string{"A", "B", "C", "D"})
	}
	tests := []struct {
		name     string
		from     int
		target   int
		fraction float64
		want     []string
	}{
		{"below the last item", 0, 3, 0.9, []string{"B", "C", "D", "A"}},
		{"directly below a lower neighbor", 0, 1, 0.9, []string{"B", "A", "C", "D"}},
		{"directly above a lower item", 0, 3, 0.1, []string{"B", "C", "A", "D"}},
		{"above the first item", 3, 0, 0.1, []string{"D", "A", "B", "C"}},
		{"directly below an upper item", 3, 0, 0.9, []string{"A", "D", "B", "C"}},
		{"middle takes the slot", 2, 0, 0.5, []string{"C", "A", "B", "D"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(4)
			a.Drop(tt.from, tt.target, tt.fraction)
			assertPermutation(t, a.Order(), 4)
			got := arranged(a)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("order after drop = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestCheck(t *testing.T) {
	display := []string{"b", "c", "a"} // shuffled on-screen list
	canonical := []string{"a", "b", "c"}

	a := New(3)
	// Rearrange display indices so positions read a, b, c.
	a.Move(2, 0) // [2 0 1] -> a, b, c
	res := a.Check(display, canonical)
	if !res.Solved {
		t.Fatalf("expected solved, positions %v", res.Positions)
	}
	for k, ok := range res.Positions {
		if !ok {
			t.Errorf("position %d should be correct", k)
		}
	}

	a.Swap(0, 1)
	res = a.Check(display, canonical)
	if res.Solved {
		t.Error("swapped arrangement should not be solved")
	}
	if res.Positions[0] || res.Positions[1] {
		t.Errorf("swapped positions should be flagged: %v", res.Positions)
	}
	if !res.Positions[2] {
		t.Error("untouched position should stay correct")
	}
}

func TestArranged(t *testing.T) {
	display := []string{"x", "y", "z"}
	a := New(3)
	a.Move(0, 2)
	got := a.Arranged(display)
	want := []string{"y", "z", "x"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Arranged() = %v, want %v", got, want)
			break
		}
	}
}

func TestNewShuffled_IsPermutation(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		a := NewShuffled(5, rng)
		assertPermutation(t, a.Order(), 5)
	}
}
