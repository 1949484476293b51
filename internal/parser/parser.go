// Package parser turns command-line style input into commands.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Tiliavir/intrack/internal/command"
	"github.com/Tiliavir/intrack/internal/filter"
	"github.com/Tiliavir/intrack/internal/messages"
	"github.com/Tiliavir/intrack/internal/model"
)

// ErrInvalidIndex is returned by ParseIndex for anything but a positive integer.
var ErrInvalidIndex = errors.New("index is not a non-zero unsigned integer")

var fieldPrefixes = []command.Prefix{
	command.PrefixCompanyName, command.PrefixLocation, command.PrefixDescription,
	command.PrefixRole, command.PrefixContactName, command.PrefixContactEmail,
	command.PrefixContactNumber, command.PrefixApplicationStatus, command.PrefixRemark,
}

// Parser builds commands. Filter expressions are compiled through filters.
type Parser struct {
	filters *filter.Compiler
}

func New(filters *filter.Compiler) *Parser {
	return &Parser{filters: filters}
}

// Parse reads one line of input: a command word followed by its arguments.
func (p *Parser) Parse(line string) (command.Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, invalidFormat(command.HelpMessage)
	}
	word, args := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		word, args = line[:i], line[i:]
	}
	return p.Build(word, TokenizeFor(word, args))
}

// TokenizeFor splits args on the prefixes that the command word accepts.
func TokenizeFor(word, args string) *ArgumentMultimap {
	return Tokenize(" "+args, prefixesFor(word)...)
}

// Build constructs the command named by word from already tokenized
// arguments. The CLI uses it directly with values taken from flags.
func (p *Parser) Build(word string, args *ArgumentMultimap) (command.Command, error) {
	switch word {
	case command.AddWord:
		return parseAdd(args)
	case command.EditWord:
		return parseEdit(args)
	case command.DeleteWord:
		idx, err := parseIndexArg(args.Preamble(), command.DeleteUsage)
		if err != nil {
			return nil, err
		}
		return command.Delete{Index: idx}, nil
	case command.AddTaskWord:
		return parseAddTask(args)
	case command.DeleteTaskWord:
		return parseDeleteTask(args)
	case command.SetDeadlineWord:
		return parseSetDeadline(args)
	case command.FindWord:
		keywords := strings.Fields(args.Preamble())
		if len(keywords) == 0 {
			return nil, invalidFormat(command.FindUsage)
		}
		return command.Find{Keywords: keywords}, nil
	case command.FilterWord:
		return p.parseFilter(args)
	case command.ListWord:
		return command.List{}, nil
	case command.ClearWord:
		return command.Clear{}, nil
	case command.HelpWord:
		return command.Help{}, nil
	case command.ExitWord:
		return command.Exit{}, nil
	}
	return nil, command.Fail(command.KindUnknownCommand, messages.UnknownCommand)
}

func prefixesFor(word string) []command.Prefix {
	switch word {
	case command.AddWord, command.EditWord:
		return fieldPrefixes
	case command.AddTaskWord:
		return []command.Prefix{command.PrefixTask}
	case command.DeleteTaskWord:
		return []command.Prefix{command.PrefixSelectTask}
	case command.SetDeadlineWord:
		return []command.Prefix{command.PrefixSelectTask, command.PrefixDeadline}
	}
	return nil
}

// ParseIndex parses a one-based index.
func ParseIndex(s string) (model.Index, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return model.Index{}, ErrInvalidIndex
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return model.Index{}, ErrInvalidIndex
	}
	return model.FromOneBased(n)
}

func parseIndexArg(s, usage string) (model.Index, error) {
	idx, err := ParseIndex(s)
	if err != nil {
		return model.Index{}, invalidFormat(usage)
	}
	return idx, nil
}

func invalidFormat(usage string) error {
	return command.Fail(command.KindInvalidFormat, fmt.Sprintf(messages.InvalidCommandFormat, usage))
}

func invalidValue(err error) error {
	return command.Fail(command.KindInvalidValue, err.Error())
}

func parseAdd(args *ArgumentMultimap) (command.Command, error) {
	required := fieldPrefixes[:len(fieldPrefixes)-1]
	if !args.Has(required...) || args.Preamble() != "" {
		return nil, invalidFormat(command.AddUsage)
	}
	if err := args.VerifyNoDuplicatePrefixesFor(fieldPrefixes...); err != nil {
		return nil, err
	}

	var in model.Internship
	for _, f := range model.Fields {
		raw, _ := args.Value(command.FieldPrefixes[f])
		v, err := f.Normalize(raw)
		if err != nil {
			return nil, invalidValue(err)
		}
		in.Set(f, v)
	}
	return command.Add{Internship: in}, nil
}

func parseEdit(args *ArgumentMultimap) (command.Command, error) {
	idx, err := parseIndexArg(args.Preamble(), command.EditUsage)
	if err != nil {
		return nil, err
	}
	if err := args.VerifyNoDuplicatePrefixesFor(fieldPrefixes...); err != nil {
		return nil, err
	}

	fields := make(map[model.Field]string)
	for _, f := range model.Fields {
		raw, ok := args.Value(command.FieldPrefixes[f])
		if !ok {
			continue
		}
		v, err := f.Normalize(raw)
		if err != nil {
			return nil, invalidValue(err)
		}
		fields[f] = v
	}
	if len(fields) == 0 {
		return nil, command.Fail(command.KindNothingToEdit, command.NotEdited)
	}
	return command.Edit{Index: idx, Fields: fields}, nil
}

func parseAddTask(args *ArgumentMultimap) (command.Command, error) {
	idx, err := parseIndexArg(args.Preamble(), command.AddTaskUsage)
	if err != nil {
		return nil, err
	}
	if !args.Has(command.PrefixTask) {
		return nil, invalidFormat(command.AddTaskUsage)
	}
	if err := args.VerifyNoDuplicatePrefixesFor(command.PrefixTask); err != nil {
		return nil, err
	}
	name, _ := args.Value(command.PrefixTask)
	if name == "" {
		return nil, command.Fail(command.KindInvalidValue, "Task names should not be blank")
	}
	return command.AddTask{InternshipIndex: idx, Task: model.Task{Name: name}}, nil
}

func parseDeleteTask(args *ArgumentMultimap) (command.Command, error) {
	idx, err := parseIndexArg(args.Preamble(), command.DeleteTaskUsage)
	if err != nil {
		return nil, err
	}
	if !args.Has(command.PrefixSelectTask) {
		return nil, invalidFormat(command.DeleteTaskUsage)
	}
	if err := args.VerifyNoDuplicatePrefixesFor(command.PrefixSelectTask); err != nil {
		return nil, err
	}
	raw, _ := args.Value(command.PrefixSelectTask)
	taskIdx, err := parseIndexArg(raw, command.DeleteTaskUsage)
	if err != nil {
		return nil, err
	}
	return command.DeleteTask{InternshipIndex: idx, TaskIndex: taskIdx}, nil
}

func parseSetDeadline(args *ArgumentMultimap) (command.Command, error) {
	idx, err := parseIndexArg(args.Preamble(), command.SetDeadlineUsage)
	if err != nil {
		return nil, err
	}
	if !args.Has(command.PrefixSelectTask, command.PrefixDeadline) {
		return nil, invalidFormat(command.SetDeadlineUsage)
	}
	if err := args.VerifyNoDuplicatePrefixesFor(command.PrefixSelectTask, command.PrefixDeadline); err != nil {
		return nil, err
	}
	rawTask, _ := args.Value(command.PrefixSelectTask)
	taskIdx, err := parseIndexArg(rawTask, command.SetDeadlineUsage)
	if err != nil {
		return nil, err
	}
	rawDeadline, _ := args.Value(command.PrefixDeadline)
	deadline, err := model.ParseDeadline(rawDeadline)
	if err != nil {
		return nil, invalidValue(err)
	}
	return command.SetDeadline{InternshipIndex: idx, TaskIndex: taskIdx, Deadline: deadline}, nil
}

func (p *Parser) parseFilter(args *ArgumentMultimap) (command.Command, error) {
	expression := args.Preamble()
	if expression == "" {
		return nil, invalidFormat(command.FilterUsage)
	}
	pred, err := p.filters.Compile(expression)
	if err != nil {
		return nil, command.Fail(command.KindInvalidValue, "Invalid filter expression: "+err.Error())
	}
	return command.Filter{Expression: expression, Predicate: pred}, nil
}
