package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

// Evaluate checks the lines in entity.WinCombos order and returns the first
// full line's owner as the winner. A full board without a line is a draw.
func Evaluate(board entity.Board) entity.Outcome {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.Win(a)
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return entity.InProgress()
	}

	return entity.Draw()
}

// PlaceMark puts the player's mark on an empty cell. Invalid moves are
// ignored: the unchanged game is returned with accepted set to false.
func PlaceMark(game entity.Game, cell int, player entity.Mark) (entity.Game, bool) {
	if !isValidMove(game, cell, player) {
		return game, false
	}

	game.Board[cell] = player

	return game, true
}

// isValidMove - checks if the move is valid.
func isValidMove(game entity.Game, cell int, player entity.Mark) bool {
	if !game.IsOngoing() {
		return false
	}

	if !entity.IsValidCell(cell) {
		return false
	}

	if game.Turn != player {
		return false
	}

	return game.Board[cell] == entity.EmptyCell
}

// AdvanceTurn settles the game after a placed mark. A finished game records
// its result in the score and keeps the turn; otherwise the turn passes.
func AdvanceTurn(game entity.Game) entity.Game {
	outcome := Evaluate(game.Board)

	if outcome.IsFinished() {
		game.Outcome = outcome
		game.Score = game.Score.Record(outcome)

		return game
	}

	game.Outcome = outcome
	game.Turn = game.Turn.Other()

	return game
}

// SelectCell plays the current player's mark at cell and advances the turn.
func SelectCell(game entity.Game, cell int) (entity.Game, bool) {
	next, ok := PlaceMark(game, cell, game.Turn)
	if !ok {
		return game, false
	}

	return AdvanceTurn(next), true
}

// Restart clears the board and hands the first move to X. Score is kept.
func Restart(game entity.Game) entity.Game {
	fresh := entity.NewGame()
	fresh.Score = game.Score

	return fresh
}

// ResetScore zeroes the score and restarts the game.
func ResetScore(entity.Game) entity.Game {
	return entity.NewGame()
}
