package command

import (
	"fmt"

	"github.com/Tiliavir/intrack/internal/messages"
	"github.com/Tiliavir/intrack/internal/model"
)

const SetDeadlineWord = "setdeadline"

var SetDeadlineUsage = SetDeadlineWord + ": Add a deadline to the task of the internship " +
	"identified by the index number used in the displayed internship data. " +
	"Parameters: INDEX_INTERNSHIP (must be a positive integer)\n" +
	PrefixSelectTask.String() + " INDEX_TASK (must be a positive integer)\n" +
	PrefixDeadline.String() + " DEADLINE\n" +
	model.DeadlineConstraints + "\n" +
	"Example: " + SetDeadlineWord + " 1 " + PrefixSelectTask.String() + " 1 " +
	PrefixDeadline.String() + " 20/04/2024"

const SetDeadlineSuccess = "Deadline Added: %s"

// SetDeadline sets or replaces the deadline of one task.
type SetDeadline struct {
	InternshipIndex model.Index
	TaskIndex       model.Index
	Deadline        model.Deadline
}

func (c SetDeadline) Execute(m model.Model) (Result, error) {
	target, err := displayedInternship(m, c.InternshipIndex)
	if err != nil {
		return Result{}, err
	}
	if c.TaskIndex.OneBased() > target.Tasks.Size() {
		return Result{}, Fail(KindInvalidTaskIndex, messages.InvalidTaskDisplayedIndex)
	}

	target.Tasks[c.TaskIndex.ZeroBased()].SetDeadline(c.Deadline)
	if err := m.SetInternship(target.ID, target); err != nil {
		return Result{}, fmt.Errorf("set deadline: %w", err)
	}
	m.UpdateFilter(model.ShowAll)

	return Result{Feedback: fmt.Sprintf(SetDeadlineSuccess, c.Deadline)}, nil
}

// Equal reports whether both commands target the same task with the same
// deadline.
func (c SetDeadline) Equal(other Command) bool {
	o, ok := other.(SetDeadline)
	return ok &&
		c.InternshipIndex == o.InternshipIndex &&
		c.TaskIndex == o.TaskIndex &&
		c.Deadline.Equal(o.Deadline)
}

func (c SetDeadline) String() string {
	return fmt.Sprintf("SetDeadline{internshipIndex=%s, taskIndex=%s, deadline=%s}",
		c.InternshipIndex, c.TaskIndex, c.Deadline)
}
