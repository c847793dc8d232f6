package oracle

import "time"

// Config tunes the LLM-backed oracle.
type Config struct {
	// Timeout bounds each model call.
	Timeout time.Duration

	// PlanMaxTokens caps the curriculum planning response.
	PlanMaxTokens int

	// TurnMaxTokens caps conversational responses (opening, grade, conclude).
	TurnMaxTokens int

	// Temperature for conversational calls. Planning always runs at 0.2.
	Temperature float64

	// MaxExchanges bounds how much transcript is sent with a grading call.
	MaxExchanges int
}

// DefaultConfig returns the recommended oracle settings.
func DefaultConfig() Config {
	return Config{
		Timeout:       45 * time.Second,
		PlanMaxTokens: 4096,
		TurnMaxTokens: 512,
		Temperature:   0.8,
		MaxExchanges:  6,
	}
}
