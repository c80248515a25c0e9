package chat

import "fmt"

const (
	Greeting = "Hi! I am your AI Tutor. Ask me anything about this topic."
	Apology  = "I'm having trouble connecting to the server right now. Please try again."
)

const systemTemplate = `You are a helpful AI Tutor for a Computer Science learning platform.
The student is currently looking at material regarding: "%s".
Answer their questions clearly and encourage critical thinking. Keep answers concise.`

func SystemInstruction(contextLabel string) string {
	return fmt.Sprintf(systemTemplate, contextLabel)
}
