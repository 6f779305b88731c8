package entity

const BoardSize = 3

type Mark string

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

// IsPlayer - reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// Cell - addresses one board position.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Cell) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Board - is the 3x3 grid indexed [row][col].
type Board [BoardSize][BoardSize]Mark

// WinLines - lists the 3 rows, 3 columns and 2 diagonals.
var WinLines = [8][3]Cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

func (that *Board) At(cell Cell) Mark {
	return that[cell.Row][cell.Col]
}

// Winner - returns the mark that fills a complete line, or Empty.
func (that *Board) Winner() Mark {
	for _, line := range WinLines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}

func (that *Board) IsFull() bool {
	return that.Count() == BoardSize*BoardSize
}

// Count - returns the number of non-empty cells.
func (that *Board) Count() int {
	count := 0
	for _, row := range that {
		for _, mark := range row {
			if mark != Empty {
				count++
			}
		}
	}

	return count
}

// EmptyCells - returns the free cells in row-major order.
func (that *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == Empty {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}

	return cells
}

// WinsWith - reports whether placing mark at cell completes a line for mark.
// The probe runs on a copy, so the receiver is never modified.
func (that Board) WinsWith(cell Cell, mark Mark) bool {
	if !cell.InRange() || !mark.IsPlayer() || that.At(cell) != Empty {
		return false
	}

	that[cell.Row][cell.Col] = mark

	return that.Winner() == mark
}
