package tutor

import "github.com/abhisek/sparklearn/internal/llm"

func str(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

// ExplanationSchema defines the structured output for topic explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "topic-explanation",
	Description: "A student-friendly explanation of a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": str("Clear multi-paragraph explanation. Use **bold** for key terms and • bullets for key points"),
			"example":     str("A relatable real-world analogy or example"),
			"microTask":   str("A specific 10-minute study task, starting with an emoji"),
		},
		"required":             []any{"explanation", "example", "microTask"},
		"additionalProperties": false,
	},
}

// RevisionSchema defines the structured output for revision notes.
var RevisionSchema = &llm.Schema{
	Name:        "revision-notes",
	Description: "Concise headed revision notes with a one-line summary",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"notes": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"heading": str("Section heading"),
						"content": str("Section body. Use • for bullet points"),
					},
					"required":             []any{"heading", "content"},
					"additionalProperties": false,
				},
			},
			"summary": str("A one-line encouraging summary"),
		},
		"required":             []any{"notes", "summary"},
		"additionalProperties": false,
	},
}

// QuestionsSchema defines the structured output for MCQ generation.
var QuestionsSchema = &llm.Schema{
	Name:        "mcq-set",
	Description: "Multiple choice questions, each with four options",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mcqs": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":       map[string]any{"type": "integer"},
						"question": str("The question text"),
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 4,
							"maxItems": 4,
						},
						"correct": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Zero-based index of the right option",
						},
						"explanation": str("Why the answer is correct"),
					},
					"required":             []any{"id", "question", "options", "correct", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"mcqs"},
		"additionalProperties": false,
	},
}

// WeeklyPlanSchema defines the structured output for study plans.
var WeeklyPlanSchema = &llm.Schema{
	Name:        "weekly-plan",
	Description: "A seven-day study plan with practical tips",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"plan": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": 7,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"day": str("Day name, Monday through Sunday"),
						"tasks": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"time":     str("Start time, e.g. 9:00 AM"),
									"task":     str("What to do"),
									"duration": str("e.g. 60 min"),
									"type":     map[string]any{"type": "string", "enum": taskTypes},
								},
								"required":             []any{"time", "task", "duration", "type"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"day", "tasks"},
					"additionalProperties": false,
				},
			},
			"tips": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"plan", "tips"},
		"additionalProperties": false,
	},
}
