package transition

// Insertion places Item at Index in the evolving sequence. Insertions
// must be applied in order, after all removals.
type Insertion[T comparable] struct {
	Item  T
	Index int
}

// Changes is the edit script produced by Reconcile.
type Changes[T comparable] struct {
	Insertions []Insertion[T]
	Removals   []T
	// Result is the sequence after applying removals, restacking, and
	// insertions. Apply it as the final order: it can differ from the
	// input even when Insertions and Removals are empty.
	Result []T
}

// Empty reports whether the script adds or removes anything. An empty
// script can still carry a reordered Result.
func (c Changes[T]) Empty() bool {
	return len(c.Insertions) == 0 && len(c.Removals) == 0
}

// Reconcile diffs the current ordered sequence against the desired one.
// Missing items are inserted so that the relative order of desired items
// is preserved in the result (stacking order), and items present in both
// sequences are restacked into desired's relative order, each keeping
// its slot among any extras. When removeExtras is set, current items
// absent from desired are removed; otherwise they keep their positions.
// Result is authoritative: it can differ from current even when the
// script holds no insertions or removals, because kept items may have
// been reordered.
func Reconcile[T comparable](current, desired []T, removeExtras bool) Changes[T] {
	var ch Changes[T]

	wanted := make(map[T]bool, len(desired))
	for _, item := range desired {
		wanted[item] = true
	}

	kept := make([]T, 0, len(current))
	for _, item := range current {
		if removeExtras && !wanted[item] {
			ch.Removals = append(ch.Removals, item)
			continue
		}
		kept = append(kept, item)
	}

	// Refill the slots occupied by desired items with those same items
	// in desired's relative order; extras keep their exact indices.
	keptSet := make(map[T]bool, len(kept))
	for _, item := range kept {
		keptSet[item] = true
	}
	inDesired := make([]T, 0, len(kept))
	for _, item := range desired {
		if keptSet[item] {
			inDesired = append(inDesired, item)
		}
	}
	slot := 0
	for i, item := range kept {
		if wanted[item] {
			kept[i] = inDesired[slot]
			slot++
		}
	}

	// Walk desired, inserting missing items just above the previously
	// seen desired item so relative stacking is preserved.
	result := kept
	cursor := 0
	for _, item := range desired {
		if at := indexOf(result, item); at >= 0 {
			cursor = at + 1
			continue
		}
		result = append(result, item)
		copy(result[cursor+1:], result[cursor:])
		result[cursor] = item
		ch.Insertions = append(ch.Insertions, Insertion[T]{Item: item, Index: cursor})
		cursor++
	}

	ch.Result = result
	return ch
}

func indexOf[T comparable](seq []T, item T) int {
	for i, v := range seq {
		if v == item {
			return i
		}
	}
	return -1
}
