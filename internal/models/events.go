package models

// Client-to-server event payloads.

type StudentJoinRequest struct {
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
}

type CreatePollRequest struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	TimeLimit          int      `json:"timeLimit"`
	CorrectAnswerIndex *int     `json:"correctAnswerIndex"`
}

type SubmitAnswerRequest struct {
	StudentID   string `json:"studentId"`
	AnswerIndex int    `json:"answerIndex"`
}

type SendMessageRequest struct {
	Message    string `json:"message"`
	SenderName string `json:"senderName"`
	SenderType string `json:"senderType"`
}
