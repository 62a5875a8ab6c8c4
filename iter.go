package shapes

import "iter"

// Iter iterates over all possible indices of the given shape, in row-major
// order (the last axis changes fastest).
// To avoid allocating the slice of indices, the yielded indices is owned by
// the Iter() method: don't change it inside the loop.
func (s Shape) Iter() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		rank := s.Rank()
		if rank == 0 {
			// Valid scalar: yield one empty index slice.
			_ = yield(make([]int, 0))
			return
		}

		// A zero dimension means there are no elements to index.
		dims := s.dims()
		for _, dim := range dims {
			if dim <= 0 {
				return
			}
		}

		currentIndices := make([]int, rank)
		// This structure simulates an N-dimensional counter for the indices.
		for {
			if !yield(currentIndices) {
				return // Consumer requested to stop iteration.
			}

			// Increment currentIndices to the next set of indices.
			axis := rank - 1
			for ; axis >= 0; axis-- {
				if dims[axis] == 1 {
					// Nothing to iterate at this axis.
					continue
				}
				currentIndices[axis]++
				if currentIndices[axis] < dims[axis] {
					// Successfully incremented this axis; no carry-over needed.
					break
				}
				// The current axis overflowed; reset it to 0 and
				// carry over to the next higher-order axis.
				currentIndices[axis] = 0
			}

			// If axis is less than 0, the first axis also overflowed and
			// iteration is complete.
			if axis < 0 {
				break
			}
		}
	}
}
