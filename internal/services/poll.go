package services

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sankalp021/intervue/internal/models"
)

const defaultTimeLimit = 60

var (
	ErrEmptyQuestion = errors.New("question must not be empty")
	ErrTooFewOptions = errors.New("poll needs at least two options")
)

// Controller owns the active poll, the roster, the tally and the poll
// history. Every handler runs its full read-modify-write under one mutex, so
// racing answer submissions and the auto-close timer never interleave.
type Controller struct {
	gateway Gateway

	mu       sync.Mutex
	roster   *Roster
	tally    *Tally
	active   *models.Poll
	history  []models.HistoryEntry
	teachers map[Sender]bool
}

func NewController(gateway Gateway) *Controller {
	return &Controller{
		gateway:  gateway,
		roster:   NewRoster(),
		tally:    NewTally(),
		teachers: make(map[Sender]bool),
	}
}

// StudentJoin registers the student (or rebinds a reconnecting one) and, if a
// poll is running, catches the new connection up with the question and the
// live results. Late joiners may still answer.
func (c *Controller) StudentJoin(conn Sender, req models.StudentJoinRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.roster.Join(req.StudentID, req.Name, conn)
	log.Printf("poll: student %s joined (%s)", req.Name, req.StudentID)

	if c.active != nil {
		conn.Send("poll-active", c.active)
		conn.Send("poll-results", c.tally.Snapshot())
	}

	c.gateway.Broadcast("student-count", c.roster.Size())
}

// TeacherJoin adds the connection to the teacher group and sends it the full
// current state: active poll and results if any, student count, history.
func (c *Controller) TeacherJoin(conn Sender) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.teachers[conn] = true
	log.Println("poll: teacher joined")

	if c.active != nil {
		conn.Send("poll-active", c.active)
		conn.Send("poll-results", c.tally.Snapshot())
	}
	conn.Send("student-count", c.roster.Size())
	conn.Send("poll-history", c.historyLocked())
}

// CreatePoll starts a new poll and schedules its auto-close. Creating over a
// live poll abandons the old one without a history entry; its pending timer
// later sees a foreign id and does nothing.
func (c *Controller) CreatePoll(req models.CreatePollRequest) error {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return ErrEmptyQuestion
	}

	options := make([]string, 0, len(req.Options))
	for _, opt := range req.Options {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	if len(options) < 2 {
		return ErrTooFewOptions
	}

	timeLimit := req.TimeLimit
	if timeLimit <= 0 {
		timeLimit = defaultTimeLimit
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.roster.ResetAnswered()
	c.active = &models.Poll{
		ID:                 uuid.NewString(),
		Question:           question,
		Options:            options,
		CorrectAnswerIndex: req.CorrectAnswerIndex,
		TimeLimit:          timeLimit,
		StartTime:          time.Now(),
		Answers:            make(map[string]int),
	}
	c.tally.Reset(len(options))

	log.Printf("poll: new poll created: %s", question)
	c.gateway.Broadcast("poll-active", c.active)
	c.gateway.Broadcast("poll-results", c.tally.Snapshot())

	pollID := c.active.ID
	time.AfterFunc(time.Duration(timeLimit)*time.Second, func() {
		c.closePoll(pollID)
	})

	return nil
}

// SubmitAnswer records a student's first answer for the active poll.
// Duplicates, unknown students, out-of-range indices and answers with no poll
// running are all silently dropped.
func (c *Controller) SubmitAnswer(req models.SubmitAnswerRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return
	}
	if req.AnswerIndex < 0 || req.AnswerIndex >= len(c.active.Options) {
		return
	}
	if !c.roster.MarkAnswered(req.StudentID) {
		return
	}

	c.active.Answers[req.StudentID] = req.AnswerIndex
	c.tally.Increment(req.AnswerIndex)
	log.Printf("poll: student %s answered: %d", req.StudentID, req.AnswerIndex)

	if c.roster.Size() > 0 && c.roster.AllAnswered() {
		c.closeLocked()
		return
	}

	c.gateway.Broadcast("poll-results", c.tally.Snapshot())
}

// GetResults re-sends the live snapshot to one connection, if a poll is active.
func (c *Controller) GetResults(conn Sender) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		conn.Send("poll-results", c.tally.Snapshot())
	}
}

// SendMessage broadcasts a chat message to everyone. Chat carries no poll
// state; empty-after-trim messages are dropped.
func (c *Controller) SendMessage(req models.SendMessageRequest) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return
	}

	msg := models.ChatMessage{
		ID:         uuid.NewString(),
		Message:    text,
		SenderName: req.SenderName,
		SenderType: req.SenderType,
		Timestamp:  time.Now(),
	}
	log.Printf("chat: %s %s: %s", msg.SenderType, msg.SenderName, text)
	c.gateway.Broadcast("new-message", msg)
}

// Disconnect drops the connection's student, if it carried one. A recorded
// answer stays counted, and full participation is re-checked against the
// reduced roster, so a disconnect can itself close the poll.
func (c *Controller) Disconnect(conn Sender) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.teachers, conn)

	id, removed := c.roster.RemoveByConn(conn)
	if !removed {
		return
	}
	log.Printf("poll: student %s disconnected", id)

	c.gateway.Broadcast("student-count", c.roster.Size())

	if c.active != nil && c.roster.Size() > 0 && c.roster.AllAnswered() {
		c.closeLocked()
	}
}

// History returns a copy of the archived polls, oldest first.
func (c *Controller) History() []models.HistoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.historyLocked()
}

// closePoll is the auto-close timer's entry point. The id check makes a stale
// timer (poll already closed or superseded) a no-op.
func (c *Controller) closePoll(pollID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil || c.active.ID != pollID {
		return
	}
	c.closeLocked()
}

// closeLocked archives the active poll and notifies everyone. Callers hold
// the lock and have verified a poll is active; clearing c.active last makes a
// second closure for the same poll impossible.
func (c *Controller) closeLocked() {
	poll := c.active
	results := c.tally.Snapshot()
	total := c.tally.Total()
	log.Printf("poll: ending poll: %s", poll.Question)

	c.history = append(c.history, models.HistoryEntry{
		ID:                 poll.ID,
		Question:           poll.Question,
		Options:            poll.Options,
		CorrectAnswerIndex: poll.CorrectAnswerIndex,
		Results:            results,
		TotalResponses:     total,
		EndTime:            time.Now(),
	})

	c.gateway.Broadcast("poll-ended", models.PollEnded{
		Question:       poll.Question,
		Options:        poll.Options,
		Results:        results,
		TotalResponses: total,
	})

	history := c.historyLocked()
	for teacher := range c.teachers {
		teacher.Send("poll-history", history)
	}

	c.active = nil
}

func (c *Controller) historyLocked() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(c.history))
	copy(out, c.history)
	return out
}
