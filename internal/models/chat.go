package models

import "time"

type ChatMessage struct {
	ID         string    `json:"id"`
	Message    string    `json:"message"`
	SenderName string    `json:"senderName"`
	SenderType string    `json:"senderType"`
	Timestamp  time.Time `json:"timestamp"`
}

const (
	SenderTypeTeacher = "teacher"
	SenderTypeStudent = "student"
)
