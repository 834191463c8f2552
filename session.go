package budget

import (
	"iter"
	"slices"

	"github.com/etnz/budget/date"
	"github.com/rs/zerolog"
)

// Session owns the records of a ledger and the counter assigning their ids.
//
// Records are kept in insertion order. A Session is not safe for concurrent use.
type Session struct {
	records []Record
	nextID  int
	today   func() date.Date
	log     zerolog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock sets the function returning the evaluation date used for interest accrual.
func WithClock(today func() date.Date) SessionOption {
	return func(s *Session) { s.today = today }
}

// WithLogger sets the logger the session reports its mutations to.
func WithLogger(log zerolog.Logger) SessionOption {
	return func(s *Session) { s.log = log }
}

// NewSession creates a session holding 'records'. The next id is one past the
// highest id in records, or 0 for an empty session.
func NewSession(records []Record, opts ...SessionOption) *Session {
	s := &Session{
		records: slices.Clone(records),
		today:   date.Today,
		log:     zerolog.Nop(),
	}
	for _, r := range s.records {
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of records.
func (s *Session) Len() int { return len(s.records) }

// NextID returns the id the next created record will get.
func (s *Session) NextID() int { return s.nextID }

// Today returns the evaluation date of the session.
func (s *Session) Today() date.Date { return s.today() }

// Records returns an iterator over a copy of each record in insertion order.
func (s *Session) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, r := range s.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Record returns the record with this id.
func (s *Session) Record(id int) (Record, bool) {
	i := s.index(id)
	if i < 0 {
		return Record{}, false
	}
	return s.records[i], true
}

// index returns the position of the record 'id' or -1.
func (s *Session) index(id int) int {
	return slices.IndexFunc(s.records, func(r Record) bool { return r.ID == id })
}
