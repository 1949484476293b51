package model

import (
	"fmt"
	"strings"
)

// Task is a to-do item owned by an internship.
type Task struct {
	Name     string    `json:"name"`
	Deadline *Deadline `json:"deadline,omitempty"`

	// Calendar bookkeeping: the Outlook event mirroring Deadline and the
	// deadline value it was last written with.
	CalendarEventID  string `json:"calendar_event_id,omitempty"`
	CalendarDeadline string `json:"calendar_deadline,omitempty"`
}

// SetDeadline sets or replaces the task's deadline.
func (t *Task) SetDeadline(d Deadline) {
	t.Deadline = &d
}

func (t Task) String() string {
	if t.Deadline == nil {
		return t.Name
	}
	return fmt.Sprintf("%s (Deadline: %s)", t.Name, t.Deadline)
}

// TaskList is the ordered task list of one internship.
type TaskList []Task

func (l TaskList) Size() int { return len(l) }

// Clone deep-copies the list including deadline pointers.
func (l TaskList) Clone() TaskList {
	if l == nil {
		return nil
	}
	out := make(TaskList, len(l))
	for i, t := range l {
		if t.Deadline != nil {
			d := *t.Deadline
			t.Deadline = &d
		}
		out[i] = t
	}
	return out
}

// String renders one numbered line per task.
func (l TaskList) String() string {
	var b strings.Builder
	for i, t := range l {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	return b.String()
}
