// Package board implements the 3x3 game board shared by both decision
// engines: cell states, the line-win evaluator, and the base-3 state
// encoding used by the learning engine's knowledge table.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the occupant of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	// Human plays X and always moves first.
	Human
	// Computer plays O.
	Computer
)

const (
	// NumCells is the number of squares on the board.
	NumCells = 9
	// NumStates is 3^9, the number of distinct board configurations.
	NumStates = 19683
)

// ErrIllegalMove is returned when a move targets an occupied or
// out-of-range cell. The board is not mutated in that case.
var ErrIllegalMove = errors.New("illegal move")

func (c Cell) String() string {
	switch c {
	case Human:
		return "X"
	case Computer:
		return "O"
	}
	return " "
}

// Opponent returns the other player's symbol. It is only meaningful for
// Human and Computer.
func (c Cell) Opponent() Cell {
	if c == Human {
		return Computer
	}
	return Human
}

// Board is a tic-tac-toe position. Cells are indexed 0..8 in row-major
// order; a cell never transitions away from Empty within a game except
// through Reset or the engines' revert during exploration.
type Board struct {
	cells [NumCells]Cell
}

// winningLines are the 8 ways to own a board, scanned in fixed order:
// rows, then columns, then diagonals.
var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// WinningLines returns the 8 line triples in the fixed scan order. The
// array is returned by value and safe to range over.
func WinningLines() [8][3]int {
	return winningLines
}

// Cell returns the occupant of the given position.
func (b *Board) Cell(pos int) Cell {
	return b.cells[pos]
}

// SetCell places c at pos. It returns ErrIllegalMove if pos is out of
// range or already occupied; the board is unchanged on error.
func (b *Board) SetCell(pos int, c Cell) error {
	if pos < 0 || pos >= NumCells {
		return fmt.Errorf("%w: position %d out of range", ErrIllegalMove, pos)
	}
	if b.cells[pos] != Empty {
		return fmt.Errorf("%w: position %d occupied", ErrIllegalMove, pos)
	}
	b.cells[pos] = c
	return nil
}

// ClearCell empties pos. It exists for the learning engine's one-move
// lookahead, which must leave the board exactly as it found it.
func (b *Board) ClearCell(pos int) {
	b.cells[pos] = Empty
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = [NumCells]Cell{}
}

// Winner scans the 8 lines in fixed order and returns the symbol owning
// the first fully-occupied line, or Empty if no line is owned. It does
// not check that the position is reachable under legal play.
func (b *Board) Winner() Cell {
	for _, line := range winningLines {
		c := b.cells[line[0]]
		if c != Empty && c == b.cells[line[1]] && c == b.cells[line[2]] {
			return c
		}
	}
	return Empty
}

// IsFull reports whether no empty cell remains.
func (b *Board) IsFull() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// EmptyCells returns the empty positions in scan order 0..8.
func (b *Board) EmptyCells() []int {
	var empties []int
	for i, c := range b.cells {
		if c == Empty {
			empties = append(empties, i)
		}
	}
	return empties
}

// Encode packs the board into a base-3 numeral, cell 0 as the most
// significant digit. The result is in [0, NumStates-1] and the mapping
// is a bijection; the empty board encodes to 0.
func (b *Board) Encode() uint16 {
	var code uint16
	for _, c := range b.cells {
		code = code*3 + uint16(c)
	}
	return code
}

// Decode is the inverse of Encode.
func Decode(code uint16) *Board {
	b := &Board{}
	for i := NumCells - 1; i >= 0; i-- {
		b.cells[i] = Cell(code % 3)
		code /= 3
	}
	return b
}

// String renders the position the way the 1973 game printed it.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for row := 0; row < 3; row++ {
		sb.WriteString(" ")
		for col := 0; col < 3; col++ {
			sb.WriteString(b.cells[row*3+col].String())
			if col < 2 {
				sb.WriteString(" | ")
			}
		}
		sb.WriteString("\n")
		if row < 2 {
			sb.WriteString("-----------\n")
		}
	}
	return sb.String()
}
