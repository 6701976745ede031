package http

import (
	"strings"
	"time"

	"homework-assistant/internal/chat"
	"homework-assistant/internal/model"
)

// --- Request DTOs ---

type submitReq struct {
	SessionID string `json:"-"` // populated from URI param
	Text      string `json:"text" binding:"max=2000"`
}

func (r submitReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return chat.ErrEmptyInput
	}
	return nil
}

func (r submitReq) toInput() chat.SubmitInput {
	return chat.SubmitInput{SessionID: r.SessionID, Text: r.Text}
}

// --- Response DTOs ---

type sessionResp struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	TurnCount int        `json:"turn_count"`
	LastTurn  *time.Time `json:"last_turn,omitempty"`
}

func newSessionResp(s model.SessionSummary) sessionResp {
	resp := sessionResp{ID: s.ID, CreatedAt: s.CreatedAt, TurnCount: s.TurnCount}
	if !s.LastTurn.IsZero() {
		t := s.LastTurn
		resp.LastTurn = &t
	}
	return resp
}

type sessionsResp struct {
	Sessions []sessionResp `json:"sessions"`
}

func newSessionsResp(in []model.SessionSummary) sessionsResp {
	out := make([]sessionResp, len(in))
	for i, s := range in {
		out[i] = newSessionResp(s)
	}
	return sessionsResp{Sessions: out}
}

type submitResp struct {
	Response   string         `json:"response"`
	Intent     string         `json:"intent"`
	Confidence float64        `json:"confidence"`
	Emotion    string         `json:"emotion"`
	Entities   model.Entities `json:"entities"`
	Outcome    string         `json:"outcome"`
	Mutated    bool           `json:"mutated"`
}

func newSubmitResp(out chat.SubmitOutput) submitResp {
	return submitResp{
		Response:   out.Response,
		Intent:     string(out.Intent.Intent),
		Confidence: out.Intent.Confidence,
		Emotion:    string(out.Emotion.Emotion),
		Entities:   out.Entities,
		Outcome:    out.Outcome,
		Mutated:    out.Mutated,
	}
}

type turnResp struct {
	Speaker   string    `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Intent    string    `json:"intent,omitempty"`
	Emotion   string    `json:"emotion,omitempty"`
}

type historyResp struct {
	SessionID string     `json:"session_id"`
	Turns     []turnResp `json:"turns"`
}

func newHistoryResp(sessionID string, turns []model.Turn) historyResp {
	out := make([]turnResp, len(turns))
	for i, t := range turns {
		out[i] = turnResp{Speaker: string(t.Speaker), Text: t.Text, Timestamp: t.Timestamp}
		if t.Intent != nil {
			out[i].Intent = string(t.Intent.Intent)
		}
		if t.Emotion != nil {
			out[i].Emotion = string(t.Emotion.Emotion)
		}
	}
	return historyResp{SessionID: sessionID, Turns: out}
}
