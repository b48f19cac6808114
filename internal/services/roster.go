package services

type student struct {
	name     string
	conn     Sender
	answered bool
}

// Roster tracks connected students and their per-poll answered flag. It is
// the single source of truth for the student count used in full-participation
// checks. Not self-locking; the Controller serializes access.
type Roster struct {
	students map[string]*student
}

func NewRoster() *Roster {
	return &Roster{students: make(map[string]*student)}
}

// Join inserts the student or, on reconnect with a known id, updates the name
// and connection while preserving the answered flag.
func (r *Roster) Join(studentID, name string, conn Sender) {
	if existing, ok := r.students[studentID]; ok {
		existing.name = name
		existing.conn = conn
		return
	}
	r.students[studentID] = &student{name: name, conn: conn}
}

// RemoveByConn removes the student currently bound to conn, if any, and
// reports the removed id.
func (r *Roster) RemoveByConn(conn Sender) (string, bool) {
	for id, s := range r.students {
		if s.conn == conn {
			delete(r.students, id)
			return id, true
		}
	}
	return "", false
}

func (r *Roster) ResetAnswered() {
	for _, s := range r.students {
		s.answered = false
	}
}

// MarkAnswered sets the flag and returns true only for a known student who
// had not answered yet. A false return means "ignore, do not count".
func (r *Roster) MarkAnswered(studentID string) bool {
	s, ok := r.students[studentID]
	if !ok || s.answered {
		return false
	}
	s.answered = true
	return true
}

func (r *Roster) Size() int {
	return len(r.students)
}

func (r *Roster) AllAnswered() bool {
	for _, s := range r.students {
		if !s.answered {
			return false
		}
	}
	return true
}
