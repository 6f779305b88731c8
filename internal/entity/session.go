package entity

import "time"

// Session - is one game from the menu's "Play" until a win, a draw or a reset.
type Session struct {
	ID             string     `json:"id"`
	Mode           Mode       `json:"mode"`
	Difficulty     Difficulty `json:"difficulty,omitempty"`
	HumanMark      Mark       `json:"human_mark,omitempty"`
	ComputerMark   Mark       `json:"computer_mark,omitempty"`
	ComputerOpened bool       `json:"computer_opened,omitempty"`
	Game           *Game      `json:"game"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (that *Session) IsWithComputer() bool {
	return that.Mode == ModeComputer
}

func (that *Session) IsFinished() bool {
	return that.Game != nil && that.Game.IsFinished()
}
