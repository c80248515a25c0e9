package lesson

// State is the lesson panel of the UI state tree.
type State struct {
	SubjectID string `json:"subject_id,omitempty"`
	TopicID   string `json:"topic_id,omitempty"`
	Content   string `json:"content"`
	Loading   bool   `json:"loading"`
	Seq       uint64 `json:"seq"`
}

type SelectSubjectRequest struct {
	SubjectID string `json:"subject_id"`
}

type SelectTopicRequest struct {
	SubjectID string `json:"subject_id"`
	TopicID   string `json:"topic_id"`
}
