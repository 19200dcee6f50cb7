package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestEmptyBoardEncodesToZero(t *testing.T) {
	is := is.New(t)
	b := &Board{}
	is.Equal(b.Encode(), uint16(0))
}

func TestTopRowEncoding(t *testing.T) {
	is := is.New(t)
	b := &Board{}
	for pos := 0; pos < 3; pos++ {
		is.NoErr(b.SetCell(pos, Human))
	}
	// 1*3^8 + 1*3^7 + 1*3^6
	is.Equal(b.Encode(), uint16(9963))
	is.Equal(b.Winner(), Human)
}

func TestEncodeDecodeBijection(t *testing.T) {
	is := is.New(t)
	seen := make(map[uint16]bool, NumStates)
	// Walk every assignment of the 9 cells, not just legal positions.
	var walk func(b *Board, pos int)
	walk = func(b *Board, pos int) {
		if pos == NumCells {
			code := b.Encode()
			is.True(code < NumStates)
			is.True(!seen[code]) // distinct boards must encode distinctly
			seen[code] = true
			is.Equal(*Decode(code), *b)
			return
		}
		for _, c := range []Cell{Empty, Human, Computer} {
			b.cells[pos] = c
			walk(b, pos+1)
		}
		b.cells[pos] = Empty
	}
	walk(&Board{}, 0)
	is.Equal(len(seen), NumStates)
}

func TestWinnerAllLines(t *testing.T) {
	is := is.New(t)
	for _, line := range winningLines {
		for _, c := range []Cell{Human, Computer} {
			b := &Board{}
			for _, pos := range line {
				is.NoErr(b.SetCell(pos, c))
			}
			is.Equal(b.Winner(), c)
		}
	}
}

func TestWinnerNoLine(t *testing.T) {
	is := is.New(t)
	b := &Board{}
	is.Equal(b.Winner(), Empty)

	// A drawn position: no fully-owned line.
	//  X | O | X
	//  X | O | O
	//  O | X | X
	for pos, c := range []Cell{Human, Computer, Human, Human, Computer, Computer, Computer, Human, Human} {
		is.NoErr(b.SetCell(pos, c))
	}
	is.Equal(b.Winner(), Empty)
	is.True(b.IsFull())
}

func TestSetCellIllegal(t *testing.T) {
	is := is.New(t)
	b := &Board{}
	is.NoErr(b.SetCell(4, Human))

	err := b.SetCell(4, Computer)
	is.True(err != nil)
	is.Equal(b.Cell(4), Human) // no mutation on error

	is.True(b.SetCell(9, Human) != nil)
	is.True(b.SetCell(-1, Human) != nil)
}

func TestEmptyCells(t *testing.T) {
	is := is.New(t)
	b := &Board{}
	is.Equal(len(b.EmptyCells()), 9)
	is.NoErr(b.SetCell(0, Human))
	is.NoErr(b.SetCell(8, Computer))
	is.Equal(b.EmptyCells(), []int{1, 2, 3, 4, 5, 6, 7})
	is.True(!b.IsFull())
}

func TestOppositeCorner(t *testing.T) {
	is := is.New(t)
	is.Equal(OppositeCorner(0), 8)
	is.Equal(OppositeCorner(8), 0)
	is.Equal(OppositeCorner(2), 6)
	is.Equal(OppositeCorner(6), 2)
	is.Equal(OppositeCorner(4), NoMove)
	is.Equal(OppositeCorner(1), NoMove)
}
