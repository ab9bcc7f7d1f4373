// Package ordering maintains the learner's arrangement of a sequencing
// question: a permutation over a fixed, shuffled display list, updated by
// drag moves and keyboard swaps.
package ordering

import "math/rand"

// Arrangement is the current order as a permutation of [0, n) over the
// display list. Every update replaces the permutation wholesale; it is
// never left partially applied.
type Arrangement struct {
	order []int
}

// New creates an identity arrangement over n items.
func New(n int) *Arrangement {
	if n < 0 {
		n = 0
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return &Arrangement{order: order}
}

// NewShuffled creates an arrangement over n items shuffled by rng.
// The shuffle re-rolls once when it lands on the identity for n > 1, so
// the learner is not presented an already-solved sequence.
func NewShuffled(n int, rng *rand.Rand) *Arrangement {
	a := New(n)
	if n < 2 {
		return a
	}
	rng.Shuffle(n, func(i, j int) {
		a.order[i], a.order[j] = a.order[j], a.order[i]
	})
	if a.isIdentity() {
		rng.Shuffle(n, func(i, j int) {
			a.order[i], a.order[j] = a.order[j], a.order[i]
		})
	}
	return a
}

// Len returns the number of items.
func (a *Arrangement) Len() int { return len(a.order) }

// Order returns a copy of the current permutation.
func (a *Arrangement) Order() []int {
	out := make([]int, len(a.order))
	copy(out, a.order)
	return out
}

// Move removes the element at from and reinserts it at to, shifting the
// items between them. Out-of-range indices make it a no-op.
func (a *Arrangement) Move(from, to int) {
	n := len(a.order)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}

	next := make([]int, 0, n)
	next = append(next, a.order[:from]...)
	next = append(next, a.order[from+1:]...)

	moved := a.order[from]
	next = append(next[:to], append([]int{moved}, next[to:]...)...)
	a.order = next
}

// Swap exchanges two adjacent positions, for arrow-key and button
// controls. Non-adjacent or boundary swaps (index 0 up, last index down)
// are no-ops.
func (a *Arrangement) Swap(i, j int) {
	n := len(a.order)
	if i < 0 || j < 0 || i >= n || j >= n {
		return
	}
	if i-j != 1 && j-i != 1 {
		return
	}
	a.order[i], a.order[j] = a.order[j], a.order[i]
}

// MoveUp swaps position i with the one above it. The top item is a no-op.
func (a *Arrangement) MoveUp(i int) { a.Swap(i, i-1) }

// MoveDown swaps position i with the one below it. The bottom item is a
// no-op.
func (a *Arrangement) MoveDown(i int) { a.Swap(i, i+1) }

// DropTarget derives the Move destination for a drag from position from
// released over the item at target, from the pointer's vertical fraction
// within that item. The top third lands directly above the target item,
// the bottom third directly below, the middle takes the target's slot.
//
// The result is the dragged item's final index, accounting for the shift
// Move's remove-then-insert causes: dragging downward pulls the target one
// slot up the moment the item leaves its old position, so the above/below
// offsets differ by drag direction.
func DropTarget(from, target int, fraction float64) int {
	if from == target {
		return target
	}
	down := from < target
	switch {
	case fraction < 1.0/3.0: // above the target item
		if down {
			return target - 1
		}
		return target
	case fraction > 2.0/3.0: // below the target item
		if down {
			return target
		}
		return target + 1
	default:
		return target
	}
}

// Drop applies a full drag gesture: the item at from is released over the
// item at target at the given vertical fraction. Out-of-range positions
// and drops onto the item's own slot are no-ops.
func (a *Arrangement) Drop(from, target int, fraction float64) {
	a.Move(from, DropTarget(from, target, fraction))
}

// Result is the outcome of checking an arrangement against the canonical
// order: a full-match boolean plus per-position flags for highlighting.
// No partial-credit scoring.
type Result struct {
	Solved    bool
	Positions []bool
}

// Check compares the arrangement against the canonical sequence.
// displayIDs is the shuffled display list the permutation indexes into;
// position k is correct iff displayIDs[order[k]] == canonical[k].
func (a *Arrangement) Check(displayIDs, canonical []string) Result {
	res := Result{Positions: make([]bool, len(a.order)), Solved: true}
	for k, idx := range a.order {
		ok := k < len(canonical) &&
			idx >= 0 && idx < len(displayIDs) &&
			displayIDs[idx] == canonical[k]
		res.Positions[k] = ok
		if !ok {
			res.Solved = false
		}
	}
	if len(a.order) != len(canonical) {
		res.Solved = false
	}
	return res
}

// Arranged maps the permutation over the display list, yielding the IDs in
// their current on-screen order. Useful for building the raw answer.
func (a *Arrangement) Arranged(displayIDs []string) []string {
	out := make([]string, 0, len(a.order))
	for _, idx := range a.order {
		if idx >= 0 && idx < len(displayIDs) {
			out = append(out, displayIDs[idx])
		}
	}
	return out
}

func (a *Arrangement) isIdentity() bool {
	for i, v := range a.order {
		if i != v {
			return false
		}
	}
	return true
}
