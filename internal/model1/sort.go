package model1

import "fmt"

// Order bubbles the rows of seq into dir order on column col. After every
// swap the scan restarts from the first row. Equal values never swap.
// Returns the number of swaps performed.
func Order(seq Sequence, col int, c Comparer, dir Direction) (int, error) {
	if err := checkColumn(seq, col); err != nil {
		return 0, err
	}

	var swaps int
	for {
		i, ok := firstInversion(seq, col, c, dir)
		if !ok {
			return swaps, nil
		}
		if err := seq.MoveBefore(i, i+1); err != nil {
			return swaps, err
		}
		swaps++
	}
}

// Toggle sorts seq ascending on col unless it already is, in which case it
// sorts descending. It returns the direction the rows end up in and the
// total number of swaps.
func Toggle(seq Sequence, col int, c Comparer) (Direction, int, error) {
	swaps, err := Order(seq, col, c, Ascending)
	if err != nil || swaps > 0 {
		return Ascending, swaps, err
	}
	swaps, err = Order(seq, col, c, Descending)

	return Descending, swaps, err
}

// IsOrdered returns true if no adjacent pair of rows is out of dir order.
func IsOrdered(seq Sequence, col int, c Comparer, dir Direction) bool {
	_, inverted := firstInversion(seq, col, c, dir)
	return !inverted
}

func firstInversion(seq Sequence, col int, c Comparer, dir Direction) (int, bool) {
	for i := 0; i < seq.Len()-1; i++ {
		x, _ := seq.Field(i, col)
		y, _ := seq.Field(i+1, col)
		switch dir {
		case Descending:
			if c.Less(x, y) {
				return i, true
			}
		default:
			if c.Less(y, x) {
				return i, true
			}
		}
	}
	return -1, false
}

// Fewer than two rows never compare, so the column is not checked for them.
func checkColumn(seq Sequence, col int) error {
	if col < 0 {
		return fmt.Errorf("%w: %d", ErrColumnRange, col)
	}
	if seq.Len() < 2 {
		return nil
	}
	for i := 0; i < seq.Len(); i++ {
		if _, ok := seq.Field(i, col); !ok {
			return fmt.Errorf("%w: row %d has no column %d", ErrColumnRange, i, col)
		}
	}
	return nil
}
