package cmd

import (
	"github.com/Tiliavir/intrack/internal/command"
)

var addTaskCmd = parsedCommand(command.AddTaskWord,
	"addtask INDEX /task NAME",
	"Add a task to a displayed internship", command.AddTaskUsage,
	prefixFlags{{name: "task", prefix: command.PrefixTask, usage: "Task name (same as /task)"}})

var deleteTaskCmd = parsedCommand(command.DeleteTaskWord,
	"deletetask INDEX /selecttask TASK_INDEX",
	"Delete a task of a displayed internship", command.DeleteTaskUsage,
	prefixFlags{{name: "select", prefix: command.PrefixSelectTask, usage: "Task index (same as /selecttask)"}})

var setDeadlineCmd = parsedCommand(command.SetDeadlineWord,
	"setdeadline INDEX /selecttask TASK_INDEX /deadline DD/MM/YYYY",
	"Set the deadline of a task", command.SetDeadlineUsage,
	prefixFlags{
		{name: "select", prefix: command.PrefixSelectTask, usage: "Task index (same as /selecttask)"},
		{name: "deadline", prefix: command.PrefixDeadline, usage: "Deadline as DD/MM/YYYY (same as /deadline)"},
	})
