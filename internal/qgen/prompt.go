package qgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz author writing multiple-choice questions for a personal study tool.

Rules:
- Generate a single question on the given topic at the requested difficulty.
- The question text must be clear, self-contained, and factually accurate.
- Provide exactly 4 options where exactly one is correct. Distractors should be plausible near-misses, not obviously wrong values.
- The answer field must match one of the choices verbatim.
- The explanation should state why the correct answer is right in one or two sentences.
- Use plain text. No markdown, no LaTeX.
- Do not repeat any question from the "already in the bank" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s", difficultyLabel(input.TargetRating))
	if input.TargetRating > 0 {
		fmt.Fprintf(&b, " (suitable for a player rated around %.0f)", input.TargetRating)
	}
	b.WriteString("\n")
	if len(input.Tags) > 0 {
		fmt.Fprintf(&b, "Related tags: %s\n", strings.Join(input.Tags, ", "))
	}

	b.WriteString("\nAlready in the bank:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats prior questions for the prompt, respecting the max limit.
// Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
