package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame()

	// Then: the board is empty, X moves first and the game is in progress
	expectedGame := &Game{
		Turn:    PlayerX,
		Outcome: Outcome{Status: StatusInProgress},
	}

	require.Equal(t, expectedGame, game)
	assert.Len(t, game.EmptyCells(), 9)
	assert.False(t, game.IsFull())
	assert.Equal(t, Empty, game.Winner())
}

func TestGame_ApplyMove(t *testing.T) {
	t.Run("Successful move switches the turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: player X plays the top-left corner
		outcome, err := game.ApplyMove(0, 0, PlayerX)
		require.NoError(t, err)

		// Then: the game continues with O to move
		assert.Equal(t, Outcome{Status: StatusInProgress}, outcome)
		assert.Equal(t, PlayerX, game.CellAt(0, 0))
		assert.Equal(t, PlayerO, game.CurrentPlayer())
		assert.Equal(t, 1, game.Moves)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where X holds the center
		game := NewGame()
		_, err := game.ApplyMove(1, 1, PlayerX)
		require.NoError(t, err)
		before := game.Clone()

		// When: O tries to play the same cell
		_, err = game.ApplyMove(1, 1, PlayerO)

		// Then: the move is illegal and nothing changes
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.Equal(t, before, game)
	})

	t.Run("Error on coordinates out of range", func(t *testing.T) {
		cases := []Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}}

		for _, cell := range cases {
			// Given: a new game
			game := NewGame()

			// When: a move is played outside the board
			_, err := game.ApplyMove(cell.Row, cell.Col, PlayerX)

			// Then: the move is illegal and the board is untouched
			require.ErrorIs(t, err, apperror.ErrIllegalMove)
			require.ErrorIs(t, err, ErrInvalidCell)
			require.Equal(t, NewGame(), game)
		}
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: a move is played without a player mark
		_, err := game.ApplyMove(0, 0, Empty)

		// Then: the move is illegal
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, ErrInvalidMark)
		require.Equal(t, NewGame(), game)
	})

	t.Run("Error on mark not on turn", func(t *testing.T) {
		// Given: a new game with X to move
		game := NewGame()

		// When: O tries to open
		_, err := game.ApplyMove(0, 0, PlayerO)

		// Then: the move is illegal and X is still on turn
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.Equal(t, NewGame(), game)
	})

	t.Run("Same mark cannot move twice in a row", func(t *testing.T) {
		// Given: X has just played
		game := NewGame()
		_, err := game.ApplyMove(0, 0, PlayerX)
		require.NoError(t, err)
		before := game.Clone()

		// When: X plays again
		_, err = game.ApplyMove(1, 1, PlayerX)

		// Then: the second move is rejected and O is on turn
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.Equal(t, before, game)
		assert.Equal(t, PlayerO, game.CurrentPlayer())
		assert.Equal(t, 1, game.Board.Count())
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: a game X has already won
		game := playMoves(t, [][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {2, 2}})
		require.True(t, game.IsFinished())
		before := game.Clone()

		// When: O tries to keep playing
		_, err := game.ApplyMove(2, 0, PlayerO)

		// Then: the move is rejected as the game is over
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		require.Equal(t, before, game)
	})
}

func TestGame_WinScenario(t *testing.T) {
	// Given: X plays the main diagonal while O plays (0,1) and (1,0)
	game := NewGame()

	moves := []struct {
		row, col int
		mark     Mark
	}{
		{0, 0, PlayerX},
		{0, 1, PlayerO},
		{1, 1, PlayerX},
		{1, 0, PlayerO},
	}
	for _, move := range moves {
		outcome, err := game.ApplyMove(move.row, move.col, move.mark)
		require.NoError(t, err)
		require.Equal(t, StatusInProgress, outcome.Status)
	}

	// When: X completes the diagonal
	outcome, err := game.ApplyMove(2, 2, PlayerX)
	require.NoError(t, err)

	// Then: X wins and the turn is frozen on the winner
	assert.Equal(t, PlayerX, game.Winner())
	assert.Equal(t, Outcome{Status: StatusWin, Winner: PlayerX}, outcome)
	assert.Equal(t, PlayerX, game.CurrentPlayer())
}

func TestGame_DrawScenario(t *testing.T) {
	// Given: moves that fill the board without a line
	//   X O X
	//   X O O
	//   O X X
	game := playMoves(t, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 0}, {2, 2}})

	// Then: the outcome is a draw with no winner
	assert.True(t, game.IsFull())
	assert.Equal(t, Empty, game.Winner())
	assert.Equal(t, Outcome{Status: StatusDraw}, game.Outcome)
	assert.Equal(t, PlayerX, game.CurrentPlayer())
}

func TestGame_TurnAlternation(t *testing.T) {
	// Given: a new game
	game := NewGame()
	expected := PlayerX

	// When: legal non-terminal moves are applied one after another
	for i, cell := range []Cell{{0, 0}, {1, 1}, {0, 2}, {0, 1}} {
		require.Equal(t, expected, game.CurrentPlayer())

		_, err := game.ApplyMove(cell.Row, cell.Col, game.CurrentPlayer())
		require.NoError(t, err)

		// Then: the number of marks equals the number of moves
		assert.Equal(t, i+1, game.Board.Count())
		assert.Equal(t, i+1, game.Moves)

		expected = expected.Opponent()
	}
}

func TestGame_UpdateOutcome(t *testing.T) {
	t.Run("Every line wins for both marks", func(t *testing.T) {
		for _, mark := range []Mark{PlayerX, PlayerO} {
			for _, line := range WinLines {
				// Given: a board where one line is filled with the mark
				game := NewGame()
				for _, cell := range line {
					game.Board[cell.Row][cell.Col] = mark
				}

				// When: the outcome is recomputed
				game.UpdateOutcome()

				// Then: the mark is the winner
				assert.Equal(t, Outcome{Status: StatusWin, Winner: mark}, game.Outcome, "line %v", line)
			}
		}
	})

	t.Run("Mixed line does not win", func(t *testing.T) {
		// Given: a top row of X, X, O
		game := NewGame()
		game.Board[0] = [3]Mark{PlayerX, PlayerX, PlayerO}

		// When: the outcome is recomputed
		game.UpdateOutcome()

		// Then: the game is still in progress
		assert.Equal(t, Outcome{Status: StatusInProgress}, game.Outcome)
	})
}

func TestGame_CellAt(t *testing.T) {
	// Given: a game with X in the center
	game := NewGame()
	game.Board[1][1] = PlayerX

	// Then: in-range reads return marks, out-of-range reads return Empty
	assert.Equal(t, PlayerX, game.CellAt(1, 1))
	assert.Equal(t, Empty, game.CellAt(0, 0))
	assert.Equal(t, Empty, game.CellAt(3, 3))
}

func playMoves(t *testing.T, moves [][2]int) *Game {
	t.Helper()

	game := NewGame()
	for i, move := range moves {
		if _, err := game.ApplyMove(move[0], move[1], game.CurrentPlayer()); err != nil {
			t.Fatalf("move %d (%v) failed: %v", i, move, err)
		}
	}

	return game
}
