package command

import (
	"fmt"
	"strings"

	"github.com/Tiliavir/intrack/internal/messages"
	"github.com/Tiliavir/intrack/internal/model"
)

const (
	ListWord   = "list"
	FindWord   = "find"
	FilterWord = "filter"
	ClearWord  = "clear"
	HelpWord   = "help"
	ExitWord   = "exit"
)

var FindUsage = FindWord + ": Finds all internships whose company names contain any of " +
	"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
	"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
	"Example: " + FindWord + " google meta"

var FilterUsage = FilterWord + ": Displays the internships matching a boolean expression.\n" +
	"Variables: company, location, description, role, contact, email, phone, status, remark, " +
	"tasks, pending_deadlines, next_deadline\n" +
	"Example: " + FilterWord + ` status == "pending" && next_deadline >= 0 && next_deadline <= 7`

const (
	ListSuccess  = "Listed all internships"
	ClearSuccess = "Internship data has been cleared!"
	ExitMessage  = "Exiting the internship tracker as requested ..."
)

// HelpMessage lists every command's usage.
var HelpMessage = strings.Join([]string{
	AddUsage, EditUsage, DeleteUsage, AddTaskUsage, DeleteTaskUsage, SetDeadlineUsage,
	ListWord + ": Lists all internships.",
	FindUsage, FilterUsage,
	ClearWord + ": Deletes all internships.",
	ExitWord + ": Exits the shell.",
}, "\n\n")

// List shows every internship.
type List struct{}

func (List) Execute(m model.Model) (Result, error) {
	m.UpdateFilter(model.ShowAll)
	return Result{Feedback: ListSuccess}, nil
}

func (List) String() string { return "List{}" }

// Find filters by company name keywords.
type Find struct {
	Keywords []string
}

func (c Find) Execute(m model.Model) (Result, error) {
	m.UpdateFilter(c.matches)
	return Result{Feedback: fmt.Sprintf(messages.InternshipsListedOverview, len(m.FilteredInternships()))}, nil
}

// matches reports whether any keyword is a whole word of the company name,
// ignoring case.
func (c Find) matches(in model.Internship) bool {
	words := strings.Fields(in.CompanyName)
	for _, kw := range c.Keywords {
		for _, w := range words {
			if strings.EqualFold(w, kw) {
				return true
			}
		}
	}
	return false
}

func (c Find) String() string {
	return fmt.Sprintf("Find{keywords=%v}", c.Keywords)
}

// Filter applies a compiled filter expression.
type Filter struct {
	Expression string
	Predicate  model.Predicate
}

func (c Filter) Execute(m model.Model) (Result, error) {
	m.UpdateFilter(c.Predicate)
	return Result{Feedback: fmt.Sprintf(messages.InternshipsListedOverview, len(m.FilteredInternships()))}, nil
}

func (c Filter) String() string {
	return fmt.Sprintf("Filter{expression=%q}", c.Expression)
}

// Clear removes all internships.
type Clear struct{}

func (Clear) Execute(m model.Model) (Result, error) {
	m.Reset(nil)
	m.UpdateFilter(model.ShowAll)
	return Result{Feedback: ClearSuccess}, nil
}

func (Clear) String() string { return "Clear{}" }

// Help shows the usage of every command.
type Help struct{}

func (Help) Execute(model.Model) (Result, error) {
	return Result{Feedback: HelpMessage, ShowHelp: true}, nil
}

func (Help) String() string { return "Help{}" }

// Exit ends an interactive session.
type Exit struct{}

func (Exit) Execute(model.Model) (Result, error) {
	return Result{Feedback: ExitMessage, Exit: true}, nil
}

func (Exit) String() string { return "Exit{}" }
