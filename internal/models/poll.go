package models

import "time"

// ResultPair is one tally entry on the wire: [optionIndex, count].
type ResultPair [2]int

type Poll struct {
	ID                 string         `json:"id"`
	Question           string         `json:"question"`
	Options            []string       `json:"options"`
	CorrectAnswerIndex *int           `json:"correctAnswerIndex,omitempty"`
	TimeLimit          int            `json:"timeLimit"`
	StartTime          time.Time      `json:"startTime"`
	Answers            map[string]int `json:"-"`
}

// HistoryEntry is an immutable snapshot of a closed poll.
type HistoryEntry struct {
	ID                 string       `json:"id"`
	Question           string       `json:"question"`
	Options            []string     `json:"options"`
	CorrectAnswerIndex *int         `json:"correctAnswerIndex,omitempty"`
	Results            []ResultPair `json:"results"`
	TotalResponses     int          `json:"totalResponses"`
	EndTime            time.Time    `json:"endTime"`
}

type PollEnded struct {
	Question       string       `json:"question"`
	Options        []string     `json:"options"`
	Results        []ResultPair `json:"results"`
	TotalResponses int          `json:"totalResponses"`
}
