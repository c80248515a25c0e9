package aiquiz

const OptionCount = 4

type Question struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}

func (q Question) valid() bool {
	return q.Question != "" &&
		len(q.Options) == OptionCount &&
		q.CorrectAnswerIndex >= 0 && q.CorrectAnswerIndex < OptionCount
}

type QuestionRequest struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

type QuestionResponse struct {
	Questions []Question `json:"questions"`
}
