package oracle

import (
	"fmt"
	"strings"
)

const planSystemPrompt = `You are an expert curriculum designer creating personalized learning roadmaps.

Rules:
- Design an ordered sequence of modules that takes the learner from fundamentals to their stated goal.
- List modules in dependency order: a module may only depend on modules that appear before it.
- The first module has no prerequisites. Every other module names at least one prerequisite by module_id.
- Use stable snake_case identifiers: module_1, module_2, and so on.
- Estimate effort honestly in whole hours per module.
- Titles are short and concrete ("Docker Fundamentals", not "Learning About Containers").
- Skills the learner already has still appear as modules so the sequence stays complete.`

const gradeSystemPromptFmt = `You are a %s conducting a friendly but professional oral examination.

Module under assessment: %s

Your personality:
- Supportive senior colleague, not a strict examiner
- Conversational and encouraging, even when correcting mistakes
- Concise: 2-4 sentences per reply

Your responsibilities:
1. Acknowledge the candidate's answer naturally.
2. Evaluate it fairly.
3. Ask one follow-up question or move to the next concept.

Score guidelines for score_delta:
- Excellent answer with depth: +8 to +10
- Good correct answer: +5 to +7
- Partially correct: +2 to +4
- Vague but on track: 0 to +1
- Incorrect but trying: -2 to 0
- Completely wrong: -5 to -2
- No answer or off-topic: -8 to -5`

// personaFor picks an examiner persona from the learner's goal.
func personaFor(goal string) string {
	g := strings.ToLower(goal)
	switch {
	case strings.Contains(g, "backend"):
		return "Senior Backend Engineer"
	case strings.Contains(g, "frontend"), strings.Contains(g, "react"):
		return "Senior Frontend Engineer"
	case strings.Contains(g, "full stack"), strings.Contains(g, "fullstack"):
		return "Full Stack Architect"
	case strings.Contains(g, "devops"), strings.Contains(g, "cloud"):
		return "Senior DevOps Engineer"
	case strings.Contains(g, "data"), strings.Contains(g, "ml"), strings.Contains(g, "ai"):
		return "Senior Data Engineer"
	case strings.Contains(g, "mobile"):
		return "Senior Mobile Developer"
	default:
		return "Senior Software Engineer"
	}
}

// buildPlanMessage constructs the user message for curriculum planning.
func buildPlanMessage(req PlanRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Goal: %s\n", req.Goal)
	fmt.Fprintf(&b, "Daily time commitment: %d hours\n", req.DailyCommitmentHours)

	b.WriteString("Already known skills: ")
	if len(req.KnownSkills) == 0 {
		b.WriteString("none")
	} else {
		b.WriteString(strings.Join(req.KnownSkills, ", "))
	}
	b.WriteString("\n\nDesign the roadmap for this learner.")

	return b.String()
}

// buildOpeningMessage constructs the user message for the examiner's
// greeting and first question.
func buildOpeningMessage(req OpeningRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a %s starting an oral examination.\n", personaFor(req.Goal))
	fmt.Fprintf(&b, "Module under assessment: %s\n\n", req.ModuleTitle)
	b.WriteString("Greet the candidate warmly, introduce yourself briefly, and ask one ")
	b.WriteString("fundamental open-ended question about the module. 3-4 sentences, plain text.")

	return b.String()
}

// buildGradeMessage renders the recent transcript plus the answer under
// evaluation. Only the last exchanges are sent to bound prompt size.
func buildGradeMessage(req GradeRequest, maxExchanges int) string {
	transcript := req.Transcript
	if maxExchanges > 0 && len(transcript) > maxExchanges {
		transcript = transcript[len(transcript)-maxExchanges:]
	}

	var b strings.Builder
	b.WriteString("Conversation so far:\n")
	for _, ex := range transcript {
		label := "Candidate"
		if ex.Role == RoleExaminer {
			label = "Examiner"
		}
		fmt.Fprintf(&b, "%s: %s\n\n", label, ex.Content)
	}
	fmt.Fprintf(&b, "Candidate: %s\n\nEvaluate this latest answer.", req.Answer)

	return b.String()
}

// buildConcludeMessage constructs the user message for closing feedback.
func buildConcludeMessage(req ConcludeRequest) string {
	result := "FAILED"
	if req.Passed {
		result = "PASSED"
	}

	var b strings.Builder
	b.WriteString("You are concluding an oral examination.\n")
	fmt.Fprintf(&b, "Module: %s\nFinal score: %d/100\nResult: %s\n\n", req.ModuleTitle, req.Score, result)
	if req.Passed {
		b.WriteString("Congratulate the candidate warmly and mention one or two strengths.")
	} else {
		b.WriteString("Be encouraging, mention what to improve, and stay positive.")
	}
	b.WriteString(" 2-3 sentences, plain text.")

	return b.String()
}
