package entity

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// Other returns the opposing player's mark.
func (that Mark) Other() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

const BoardSize = 9

// Board is a 3x3 grid in row-major order, index = row*3+col.
type Board [BoardSize]Mark

// WinCombos lists every line in evaluation order: rows top to bottom,
// columns left to right, then the two diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}
	return cells
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"
)

// Outcome is InProgress, Win(Winner) or Draw. Winner is set only for StatusWon.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: StatusOngoing}
}

func Win(player Mark) Outcome {
	return Outcome{Status: StatusWon, Winner: player}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

// Game is the engine state: board, current player, outcome and the running score.
type Game struct {
	Board   Board   `json:"board"`
	Turn    Mark    `json:"turn"`
	Outcome Outcome `json:"outcome"`
	Score   Score   `json:"score"`
}

func NewGame() Game {
	return Game{
		Turn:    PlayerX,
		Outcome: InProgress(),
	}
}

func (that Game) IsOngoing() bool {
	return that.Outcome.IsOngoing()
}

func (that Game) IsFinished() bool {
	return that.Outcome.IsFinished()
}
