package command

import (
	"fmt"

	"github.com/Tiliavir/intrack/internal/messages"
	"github.com/Tiliavir/intrack/internal/model"
)

const (
	AddTaskWord    = "addtask"
	DeleteTaskWord = "deletetask"
)

var AddTaskUsage = AddTaskWord + ": Adds a task to the internship identified by the index number " +
	"used in the displayed internship list.\nParameters: INDEX (must be a positive integer) " +
	PrefixTask.String() + " TASK\n" +
	"Example: " + AddTaskWord + " 1 " + PrefixTask.String() + " Complete online assessment"

var DeleteTaskUsage = DeleteTaskWord + ": Deletes a task of the internship identified by the index number " +
	"used in the displayed internship list.\nParameters: INDEX_INTERNSHIP (must be a positive integer) " +
	PrefixSelectTask.String() + " INDEX_TASK (must be a positive integer)\n" +
	"Example: " + DeleteTaskWord + " 1 " + PrefixSelectTask.String() + " 2"

const (
	AddTaskSuccess    = "New task added: %s"
	DeleteTaskSuccess = "Deleted task: %s"
)

// AddTask appends a task to a displayed internship.
type AddTask struct {
	InternshipIndex model.Index
	Task            model.Task
}

func (c AddTask) Execute(m model.Model) (Result, error) {
	target, err := displayedInternship(m, c.InternshipIndex)
	if err != nil {
		return Result{}, err
	}
	target.Tasks = append(target.Tasks, c.Task)
	if err := m.SetInternship(target.ID, target); err != nil {
		return Result{}, fmt.Errorf("add task: %w", err)
	}
	m.UpdateFilter(model.ShowAll)
	return Result{Feedback: fmt.Sprintf(AddTaskSuccess, c.Task)}, nil
}

func (c AddTask) String() string {
	return fmt.Sprintf("AddTask{internshipIndex=%s, task=%s}", c.InternshipIndex, c.Task)
}

// DeleteTask removes one task from a displayed internship.
type DeleteTask struct {
	InternshipIndex model.Index
	TaskIndex       model.Index
}

func (c DeleteTask) Execute(m model.Model) (Result, error) {
	target, err := displayedInternship(m, c.InternshipIndex)
	if err != nil {
		return Result{}, err
	}
	if c.TaskIndex.OneBased() > target.Tasks.Size() {
		return Result{}, Fail(KindInvalidTaskIndex, messages.InvalidTaskDisplayedIndex)
	}
	i := c.TaskIndex.ZeroBased()
	removed := target.Tasks[i]
	target.Tasks = append(target.Tasks[:i], target.Tasks[i+1:]...)
	if err := m.SetInternship(target.ID, target); err != nil {
		return Result{}, fmt.Errorf("delete task: %w", err)
	}
	m.UpdateFilter(model.ShowAll)
	return Result{Feedback: fmt.Sprintf(DeleteTaskSuccess, removed)}, nil
}

func (c DeleteTask) String() string {
	return fmt.Sprintf("DeleteTask{internshipIndex=%s, taskIndex=%s}", c.InternshipIndex, c.TaskIndex)
}
