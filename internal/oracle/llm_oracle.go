package oracle

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/studyplan/internal/llm"
	"github.com/abhisek/studyplan/internal/roadmap"
)

// LLMOracle implements Oracle on top of the LLM provider.
type LLMOracle struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMOracle with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMOracle {
	return &LLMOracle{provider: provider, config: cfg}
}

// planOutput is the raw planning response before conversion.
type planOutput struct {
	Modules []struct {
		ModuleID       string   `json:"module_id"`
		Title          string   `json:"title"`
		Prerequisites  []string `json:"prerequisites"`
		EstimatedHours int      `json:"estimated_hours"`
	} `json:"modules"`
}

// Plan designs a module sequence for the learner. The result is
// validated as a roadmap before it is returned.
func (o *LLMOracle) Plan(ctx context.Context, req PlanRequest) ([]roadmap.Module, error) {
	ctx = llm.WithPurpose(ctx, "plan")
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	resp, err := o.provider.Generate(ctx, llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanMessage(req)},
		},
		Schema:      PlanSchema,
		MaxTokens:   o.config.PlanMaxTokens,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("plan curriculum: %w", err)
	}

	var raw planOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse curriculum plan: %w", err)
	}

	modules := make([]roadmap.Module, 0, len(raw.Modules))
	for _, m := range raw.Modules {
		prereqs := m.Prerequisites
		if prereqs == nil {
			prereqs = []string{}
		}
		modules = append(modules, roadmap.Module{
			ID:             m.ModuleID,
			Title:          m.Title,
			Prerequisites:  prereqs,
			EstimatedHours: m.EstimatedHours,
			Status:         roadmap.StatusLocked,
		})
	}

	if err := roadmap.Validate(modules); err != nil {
		return nil, fmt.Errorf("validate curriculum plan: %w", err)
	}
	return modules, nil
}

// Opening produces the examiner's greeting and first question.
func (o *LLMOracle) Opening(ctx context.Context, req OpeningRequest) (string, error) {
	ctx = llm.WithPurpose(ctx, "viva-open")
	return o.message(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildOpeningMessage(req)},
		},
		Schema:      OpeningSchema,
		MaxTokens:   o.config.TurnMaxTokens,
		Temperature: o.config.Temperature,
	}, "opening question")
}

// gradeOutput is the raw grading response before clamping.
type gradeOutput struct {
	Reply      string `json:"reply"`
	ScoreDelta int    `json:"score_delta"`
}

// Grade evaluates the candidate's latest answer. The returned delta is
// clamped to [-10, 10] even if the model strays outside it.
func (o *LLMOracle) Grade(ctx context.Context, req GradeRequest) (GradeResult, error) {
	ctx = llm.WithPurpose(ctx, "viva-grade")
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	resp, err := o.provider.Generate(ctx, llm.Request{
		System: fmt.Sprintf(gradeSystemPromptFmt, personaFor(req.Goal), req.ModuleTitle),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradeMessage(req, o.config.MaxExchanges)},
		},
		Schema:      GradeSchema,
		MaxTokens:   o.config.TurnMaxTokens,
		Temperature: o.config.Temperature,
	})
	if err != nil {
		return GradeResult{}, fmt.Errorf("grade answer: %w", err)
	}

	var raw gradeOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return GradeResult{}, fmt.Errorf("parse grade: %w", err)
	}

	delta := raw.ScoreDelta
	if delta > 10 {
		delta = 10
	}
	if delta < -10 {
		delta = -10
	}
	return GradeResult{Reply: raw.Reply, Delta: delta}, nil
}

// Conclude produces closing feedback for a finished assessment.
func (o *LLMOracle) Conclude(ctx context.Context, req ConcludeRequest) (string, error) {
	ctx = llm.WithPurpose(ctx, "viva-conclude")
	return o.message(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildConcludeMessage(req)},
		},
		Schema:      ConcludeSchema,
		MaxTokens:   o.config.TurnMaxTokens,
		Temperature: 0.7,
	}, "closing feedback")
}

// message runs a single-message request whose schema wraps plain text
// in a {"message": ...} object.
func (o *LLMOracle) message(ctx context.Context, req llm.Request, what string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	resp, err := o.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", what, err)
	}

	var raw struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return "", fmt.Errorf("parse %s: %w", what, err)
	}
	if raw.Message == "" {
		return "", fmt.Errorf("empty %s", what)
	}
	return raw.Message, nil
}
