package qgen

import "github.com/haxx0rman/qBank/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single multiple-choice quiz question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the user, in plain text",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options, exactly one of which is correct",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The text of the correct option, matching one of the choices verbatim",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A short factual justification of the correct answer",
			},
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Self-assessed difficulty from 1 (easy) to 5 (hard)",
			},
		},
		"required":             []any{"question_text", "choices", "answer", "explanation", "difficulty"},
		"additionalProperties": false,
	},
}
