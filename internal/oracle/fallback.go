package oracle

import "fmt"

// Deterministic stand-ins used when the model is unreachable. Grading
// falls back to a neutral reply with no score change so an outage can
// never fail a candidate.

// FallbackOpening returns a templated greeting and first question.
func FallbackOpening(moduleTitle string) string {
	return fmt.Sprintf("Welcome! Today we're talking about %s. "+
		"Let's start with the basics: can you walk me through what this "+
		"module covers and why it matters?", moduleTitle)
}

// FallbackGrade returns a neutral graded turn with delta zero.
func FallbackGrade() GradeResult {
	return GradeResult{
		Reply: "Thank you for your answer. Let's continue with the next question.",
		Delta: 0,
	}
}

// FallbackFeedback returns templated closing feedback.
func FallbackFeedback(score int, passed bool) string {
	if passed {
		return fmt.Sprintf("Congratulations! You passed with a score of %d/100. Well done!", score)
	}
	return fmt.Sprintf("You scored %d/100. Review the material and try again when you're ready.", score)
}
