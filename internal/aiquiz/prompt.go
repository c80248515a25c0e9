package aiquiz

import (
	"fmt"

	"google.golang.org/genai"
)

const (
	DefaultQuestionCount = 3
	MaxQuestionCount     = 10
)

const quizTemplate = `Generate %d multiple-choice questions about %s for a computer science student.
Return ONLY a JSON array.
Each object should have:
- "question": string
- "options": array of 4 strings
- "correctAnswerIndex": number (0-3)
- "explanation": string (why the answer is correct)
`

func ClampCount(n, fallback int) int {
	if n <= 0 {
		n = fallback
	}
	if n <= 0 {
		n = DefaultQuestionCount
	}
	if n > MaxQuestionCount {
		n = MaxQuestionCount
	}
	return n
}

func BuildPrompt(topic string, count int) string {
	return fmt.Sprintf(quizTemplate, count, topic)
}

// ResponseSchema is the array-of-questions shape the model is constrained to.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {Type: genai.TypeString},
				"options": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"correctAnswerIndex": {Type: genai.TypeInteger},
				"explanation":        {Type: genai.TypeString},
			},
			Required:         []string{"question", "options", "correctAnswerIndex", "explanation"},
			PropertyOrdering: []string{"question", "options", "correctAnswerIndex", "explanation"},
		},
	}
}
