package server

import (
	. "TurtleAdventure/internal/game"
)

/* ----------------------------- Wire DTOs ----------------------------- */

type joinedMsg struct {
	Type    string `json:"type"` // "joined"
	Session string `json:"session"`
}

type shapeDTO struct {
	Kind  string  `json:"kind"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
	Fill  bool    `json:"fill,omitempty"`
}

type stateMsg struct {
	Type    string     `json:"type"` // "state"
	Session string     `json:"session"`
	Now     int64      `json:"now"`
	State   string     `json:"state"`
	W       float64    `json:"w"`
	H       float64    `json:"h"`
	Level   int        `json:"level"`
	Shapes  []shapeDTO `json:"shapes"`
	Banner  string     `json:"banner,omitempty"`
}

func stateMsgFrom(session string, f Frame) stateMsg {
	msg := stateMsg{
		Type:    "state",
		Session: session,
		Now:     f.NowMillis,
		State:   f.State.String(),
		W:       f.ArenaW,
		H:       f.ArenaH,
		Level:   f.Level,
		Shapes:  make([]shapeDTO, len(f.Shapes)),
		Banner:  f.Banner,
	}
	for i, s := range f.Shapes {
		msg.Shapes[i] = shapeDTO{
			Kind:  string(s.Kind),
			X:     s.Pos.X,
			Y:     s.Pos.Y,
			Size:  s.Size,
			Color: s.Color,
			Fill:  s.Fill,
		}
	}
	return msg
}
