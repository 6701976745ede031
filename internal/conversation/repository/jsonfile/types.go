package jsonfile

import "homework-assistant/internal/model"

const fileVersion = 1

type fileFormat struct {
	Version  int             `json:"version"`
	Sessions []model.Session `json:"sessions"`
}

// clone copies the session list so a failed write can be discarded.
func (f fileFormat) clone() fileFormat {
	out := fileFormat{Version: f.Version, Sessions: make([]model.Session, len(f.Sessions))}
	for i, s := range f.Sessions {
		s.Turns = append([]model.Turn(nil), s.Turns...)
		out.Sessions[i] = s
	}
	return out
}

func (f fileFormat) index(id string) int {
	for i, s := range f.Sessions {
		if s.ID == id {
			return i
		}
	}
	return -1
}
