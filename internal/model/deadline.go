package model

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// DeadlineLayout is the only accepted deadline format (DD/MM/YYYY).
const DeadlineLayout = "02/01/2006"

// DeadlineConstraints is shown to the user when a deadline fails to parse.
const DeadlineConstraints = "Deadlines should be in the format DD/MM/YYYY and must be a valid calendar date, e.g. 20/04/2024"

// ErrInvalidDeadline is returned for input that is not a DD/MM/YYYY date.
var ErrInvalidDeadline = errors.New(DeadlineConstraints)

var deadlinePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Deadline is a validated calendar date attached to a task.
type Deadline struct {
	date time.Time
}

// ParseDeadline validates s against DeadlineLayout.
func ParseDeadline(s string) (Deadline, error) {
	s = strings.TrimSpace(s)
	if !deadlinePattern.MatchString(s) {
		return Deadline{}, ErrInvalidDeadline
	}
	t, err := time.Parse(DeadlineLayout, s)
	if err != nil {
		return Deadline{}, ErrInvalidDeadline
	}
	return Deadline{date: t}, nil
}

// NewDeadline builds a Deadline from a calendar date, dropping the time of day.
func NewDeadline(year int, month time.Month, day int) Deadline {
	return Deadline{date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Time returns the deadline as midnight UTC.
func (d Deadline) Time() time.Time { return d.date }

func (d Deadline) IsZero() bool { return d.date.IsZero() }

func (d Deadline) Equal(other Deadline) bool { return d.date.Equal(other.date) }

// DaysFrom returns the number of whole days from the calendar day of now
// until the deadline. Past deadlines are negative.
func (d Deadline) DaysFrom(now time.Time) int {
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return int(d.date.Sub(today).Hours() / 24)
}

func (d Deadline) String() string {
	return d.date.Format(DeadlineLayout)
}

func (d Deadline) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Deadline) UnmarshalText(text []byte) error {
	parsed, err := ParseDeadline(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
