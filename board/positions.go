package board

// CenterCell is the strongest opening square.
const CenterCell = 4

// NoMove is returned by engines asked to move on a full board.
const NoMove = -1

var (
	// Corners in the fixed preference order both engines use.
	Corners = [4]int{0, 2, 6, 8}

	// oppositeCorner[i] is the corner diagonally opposite Corners[i].
	oppositeCorner = [4]int{8, 6, 2, 0}

	// Edges in fixed preference order.
	Edges = [4]int{1, 3, 5, 7}

	// Priority is the opening-book fallback order of the 1973 program:
	// center, corners, edges.
	Priority = [NumCells]int{4, 0, 2, 6, 8, 1, 3, 5, 7}
)

// OppositeCorner returns the corner diagonally opposite pos, or NoMove
// if pos is not a corner.
func OppositeCorner(pos int) int {
	for i, c := range Corners {
		if c == pos {
			return oppositeCorner[i]
		}
	}
	return NoMove
}
