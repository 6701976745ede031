package model

// Emotion is the fixed taxonomy used for tone adjustment.
type Emotion string

const (
	EmotionJoy         Emotion = "joy"
	EmotionSadness     Emotion = "sadness"
	EmotionFrustration Emotion = "frustration"
	EmotionAnxiety     Emotion = "anxiety"
	EmotionSurprise    Emotion = "surprise"
	EmotionNeutral     Emotion = "neutral"
)

// Emotions lists the detectable emotions. Neutral is the fallback.
var Emotions = []Emotion{
	EmotionJoy,
	EmotionSadness,
	EmotionFrustration,
	EmotionAnxiety,
	EmotionSurprise,
}

// EmotionResult is a detected emotion with its confidence in [0, 1].
type EmotionResult struct {
	Emotion    Emotion `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

// NeutralEmotion is returned when detection fails or nothing stands out.
var NeutralEmotion = EmotionResult{Emotion: EmotionNeutral, Confidence: 0}
