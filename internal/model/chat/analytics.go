package chat

// Analytics holds per-session usage counters. All counters are monotonically
// non-decreasing for the lifetime of the session.
type Analytics struct {
	QuestionsAsked   int `json:"questionsAsked"`
	PositiveFeedback int `json:"positiveFeedback"`
	NegativeFeedback int `json:"negativeFeedback"`
}
