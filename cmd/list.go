package cmd

import (
	"github.com/Tiliavir/intrack/internal/command"
)

var listCmd = parsedCommand(command.ListWord, "list",
	"List all internships", "list: Lists all internships and resets any filter.", nil)

var findCmd = parsedCommand(command.FindWord, "find KEYWORD [MORE_KEYWORDS]...",
	"Find internships by company name", command.FindUsage, nil)

var filterCmd = parsedCommand(command.FilterWord, "filter EXPRESSION",
	"Display internships matching an expression", command.FilterUsage, nil)

var clearCmd = parsedCommand(command.ClearWord, "clear",
	"Delete all internships", "clear: Deletes all internships.", nil)
