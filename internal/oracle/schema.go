package oracle

import "github.com/abhisek/studyplan/internal/llm"

// PlanSchema defines the JSON schema for curriculum planning responses.
var PlanSchema = &llm.Schema{
	Name:        "curriculum-plan",
	Description: "An ordered sequence of learning modules for a goal",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"modules": map[string]any{
				"type":        "array",
				"minItems":    3,
				"maxItems":    12,
				"description": "Modules in dependency order, fundamentals first",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"module_id": map[string]any{
							"type":        "string",
							"description": "Stable identifier, snake_case, e.g. module_1",
						},
						"title": map[string]any{
							"type":        "string",
							"description": "Short human-readable module title",
						},
						"prerequisites": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "module_ids that must be completed first. Empty for the root module.",
						},
						"estimated_hours": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     40,
							"description": "Total study effort in whole hours",
						},
					},
					"required":             []any{"module_id", "title", "prerequisites", "estimated_hours"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"modules"},
		"additionalProperties": false,
	},
}

// OpeningSchema defines the JSON schema for the examiner's greeting and
// first question.
var OpeningSchema = &llm.Schema{
	Name:        "viva-opening",
	Description: "The examiner's greeting and opening question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "Greeting followed by one open-ended question, plain text",
			},
		},
		"required":             []any{"message"},
		"additionalProperties": false,
	},
}

// GradeSchema defines the JSON schema for answer evaluation responses.
var GradeSchema = &llm.Schema{
	Name:        "viva-grade",
	Description: "The examiner's reply and score adjustment for one answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply": map[string]any{
				"type":        "string",
				"description": "Conversational reply ending in the next question, 2-4 sentences",
			},
			"score_delta": map[string]any{
				"type":        "integer",
				"minimum":     -10,
				"maximum":     10,
				"description": "Score adjustment for this answer",
			},
		},
		"required":             []any{"reply", "score_delta"},
		"additionalProperties": false,
	},
}

// ConcludeSchema defines the JSON schema for closing feedback.
var ConcludeSchema = &llm.Schema{
	Name:        "viva-conclude",
	Description: "The examiner's closing feedback for a finished assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "Constructive closing feedback, 2-3 sentences, plain text",
			},
		},
		"required":             []any{"message"},
		"additionalProperties": false,
	},
}
