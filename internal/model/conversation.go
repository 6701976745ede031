package model

import "time"

// Speaker identifies who produced a turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Turn is one utterance in a session. Annotations are only set on user turns.
type Turn struct {
	Speaker   Speaker        `json:"speaker"`
	Text      string         `json:"text"`
	Timestamp time.Time      `json:"timestamp"`
	Intent    *IntentResult  `json:"intent,omitempty"`
	Entities  *Entities      `json:"entities,omitempty"`
	Emotion   *EmotionResult `json:"emotion,omitempty"`
}

// Session is an ordered, append-only conversation.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Turns     []Turn    `json:"turns"`
}

// SessionSummary describes a session without its turns.
type SessionSummary struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	TurnCount int       `json:"turn_count"`
	LastTurn  time.Time `json:"last_turn,omitempty"`
}

// Clone returns a deep copy of the turn's annotations.
func (t Turn) Clone() Turn {
	if t.Intent != nil {
		v := *t.Intent
		t.Intent = &v
	}
	if t.Emotion != nil {
		v := *t.Emotion
		t.Emotion = &v
	}
	if t.Entities != nil {
		v := t.Entities.Clone()
		t.Entities = &v
	}
	return t
}
