package entity

type Mode string

const (
	ModeTwoPlayer  Mode = "two-player"
	ModeVsComputer Mode = "ai"
)

// ComputerMark is the side played by the computer in ModeVsComputer.
const ComputerMark = PlayerO

func (that Mode) IsValid() bool {
	return that == ModeTwoPlayer || that == ModeVsComputer
}
