package entity

// Session is the state owned by one client: the mode, the engine state and a
// version that grows with every accepted change.
type Session struct {
	ID      string `json:"id"`
	Mode    Mode   `json:"mode"`
	Game    Game   `json:"game"`
	Version uint64 `json:"version"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:   id,
		Mode: ModeTwoPlayer,
		Game: NewGame(),
	}
}

func (that *Session) IsVsComputer() bool {
	return that.Mode == ModeVsComputer
}

// IsComputerTurn reports whether the computer is due to move.
func (that *Session) IsComputerTurn() bool {
	return that.IsVsComputer() && that.Game.IsOngoing() && that.Game.Turn == ComputerMark
}

// Touch marks an accepted state change.
func (that *Session) Touch() {
	that.Version++
}
