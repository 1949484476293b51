// Package messages holds the user-visible strings and the formatting of
// internships for display.
package messages

import (
	"fmt"
	"strings"

	"github.com/Tiliavir/intrack/internal/model"
)

const (
	UnknownCommand                  = "Unknown command"
	InvalidCommandFormat            = "Invalid command format! \n%s"
	InvalidInternshipDisplayedIndex = "Index has to be a positive number (1,2,3...) and one of the displayed internship indexes."
	InvalidTaskDisplayedIndex       = "Task index has to be a positive number (1,2,3...) and one of the displayed task indexes of the internship."
	InternshipsListedOverview       = "%d internships listed!"
	DuplicateFields                 = "Multiple values specified for the following single-valued field(s): "
)

// ErrorMessageForDuplicatePrefixes names each repeated prefix once.
func ErrorMessageForDuplicatePrefixes(prefixes ...fmt.Stringer) string {
	seen := make(map[string]bool, len(prefixes))
	var fields []string
	for _, p := range prefixes {
		label := p.String()
		if seen[label] {
			continue
		}
		seen[label] = true
		fields = append(fields, label)
	}
	return DuplicateFields + strings.Join(fields, " ")
}

// Format renders in for display, one labelled line per field followed by
// the task list.
func Format(in model.Internship) string {
	var b strings.Builder
	b.WriteString("\nCompany Name: ")
	b.WriteString(in.CompanyName)
	b.WriteString("\nLocation: ")
	b.WriteString(in.Location)
	b.WriteString("\nDescription: ")
	b.WriteString(in.Description)
	b.WriteString("\nRole: ")
	b.WriteString(in.Role)
	b.WriteString("\nContact Name: ")
	b.WriteString(in.ContactName)
	b.WriteString("\nContact Email: ")
	b.WriteString(in.ContactEmail)
	b.WriteString("\nContact Number: ")
	b.WriteString(in.ContactNumber)
	b.WriteString("\nApplication Status: ")
	b.WriteString(string(in.ApplicationStatus))
	b.WriteString("\nRemark: ")
	b.WriteString(in.Remark)
	b.WriteString("\nTasks:\n")
	b.WriteString(in.Tasks.String())
	return b.String()
}
