package lesson

import (
	"fmt"

	"github.com/saulo-duarte/omnilearn-lambda/internal/catalog"
)

const WelcomeGreeting = "## Welcome to CS OmniLearn \nSelect a subject from the dashboard to begin your learning journey. \n\nOur AI-powered platform generates custom, up-to-date e-materials for every topic."

const ErrorContent = "## Error\nSorry, we couldn't generate the material right now. Please check your connection and try again."

const EmptyContent = "Failed to generate content."

const lessonTemplate = `
You are an expert Computer Science professor creating high-quality e-learning material.
Subject: %s
Topic: %s

Task: %s

Format your response in clean Markdown.
- Use ## for main sections.
- Use **bold** for key terms.
- Use code blocks (with language specified) for examples.
- Include a "Key Takeaways" section at the end.
- Be concise but comprehensive.
`

func BuildPrompt(subject catalog.Subject, topic catalog.Topic) string {
	return fmt.Sprintf(lessonTemplate, subject.Title, topic.Title, topic.Prompt)
}

func SubjectOverview(subject catalog.Subject) string {
	return fmt.Sprintf("## %s\n\n%s\n\nSelect a topic from the sidebar to generate a lesson.", subject.Title, subject.Description)
}
