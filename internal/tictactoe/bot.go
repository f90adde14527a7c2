package tictactoe

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

// RandomSource picks the fallback move. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a math/rand source seeded with seed.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed)) //nolint: gosec // move choice is not security sensitive
}

// ChooseComputerMove looks one ply ahead: take a winning cell, else block the
// opponent's winning cell, else play a random empty cell. Both scans run
// 0 to 8 and return the first hit. It does not see forks.
// ok is false only when the board is full.
func ChooseComputerMove(board entity.Board, computer entity.Mark, rnd RandomSource) (int, bool) {
	if cell, ok := findWinningCell(board, computer); ok {
		return cell, true
	}

	if cell, ok := findWinningCell(board, computer.Other()); ok {
		return cell, true
	}

	available := board.EmptyCells()
	if len(available) == 0 {
		return 0, false
	}

	return available[rnd.Intn(len(available))], true
}

func findWinningCell(board entity.Board, player entity.Mark) (int, bool) {
	for cell, mark := range board {
		if mark != entity.EmptyCell {
			continue
		}

		probe := board
		probe[cell] = player

		if outcome := Evaluate(probe); outcome.Status == entity.StatusWon && outcome.Winner == player {
			return cell, true
		}
	}

	return 0, false
}
