package quiz

import "github.com/saulo-duarte/omnilearn-lambda/internal/aiquiz"

type Phase string

const (
	PhaseClosed    Phase = "CLOSED"
	PhaseLoading   Phase = "LOADING"
	PhaseFailed    Phase = "FAILED"
	PhaseAnswering Phase = "ANSWERING"
	PhaseAnswered  Phase = "ANSWERED"
	PhaseResults   Phase = "RESULTS"
)

// State is the quiz panel of the UI state tree.
type State struct {
	Open           bool              `json:"open"`
	Loading        bool              `json:"loading"`
	Topic          string            `json:"topic,omitempty"`
	Questions      []aiquiz.Question `json:"questions"`
	CurrentIndex   int               `json:"current_index"`
	SelectedOption *int              `json:"selected_option"`
	Answered       bool              `json:"answered"`
	Score          int               `json:"score"`
	ShowResults    bool              `json:"show_results"`
	Phase          Phase             `json:"phase"`
}

type OpenRequest struct {
	Topic string `json:"topic"`
}

type AnswerRequest struct {
	Option *int `json:"option"`
}
