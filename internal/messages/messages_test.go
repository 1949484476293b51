package messages_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/intrack/internal/messages"
	"github.com/Tiliavir/intrack/internal/model"
)

type label string

func (l label) String() string { return string(l) }

func TestErrorMessageForDuplicatePrefixes(t *testing.T) {
	got := messages.ErrorMessageForDuplicatePrefixes(label("/com"), label("/com"), label("/loc"))

	require.True(t, strings.HasPrefix(got, messages.DuplicateFields))
	fields := strings.Split(strings.TrimPrefix(got, messages.DuplicateFields), " ")
	assert.ElementsMatch(t, []string{"/com", "/loc"}, fields)
}

func TestErrorMessageForDuplicatePrefixesSingle(t *testing.T) {
	got := messages.ErrorMessageForDuplicatePrefixes(label("/deadline"))
	assert.Equal(t, messages.DuplicateFields+"/deadline", got)
}

func TestFormat(t *testing.T) {
	d := model.NewDeadline(2024, 4, 20)
	in := model.Internship{
		CompanyName:       "Google",
		Location:          "Singapore",
		Description:       "Backend team",
		Role:              "SWE Intern",
		ContactName:       "Jane Doe",
		ContactEmail:      "jane@google.com",
		ContactNumber:     "91234567",
		ApplicationStatus: model.StatusPending,
		Remark:            "Referred",
		Tasks: model.TaskList{
			{Name: "Online assessment", Deadline: &d},
			{Name: "Thank-you email"},
		},
	}

	want := "\nCompany Name: Google\n" +
		"Location: Singapore\n" +
		"Description: Backend team\n" +
		"Role: SWE Intern\n" +
		"Contact Name: Jane Doe\n" +
		"Contact Email: jane@google.com\n" +
		"Contact Number: 91234567\n" +
		"Application Status: pending\n" +
		"Remark: Referred\n" +
		"Tasks:\n" +
		"1. Online assessment (Deadline: 20/04/2024)\n" +
		"2. Thank-you email\n"
	assert.Equal(t, want, messages.Format(in))
}

func TestFormatFieldOrder(t *testing.T) {
	out := messages.Format(model.Internship{CompanyName: "A", ApplicationStatus: model.StatusToApply})
	labels := []string{
		"Company Name:", "Location:", "Description:", "Role:", "Contact Name:",
		"Contact Email:", "Contact Number:", "Application Status:", "Remark:", "Tasks:",
	}
	last := -1
	for _, l := range labels {
		pos := strings.Index(out, l)
		require.Greater(t, pos, last, "label %q out of order", l)
		last = pos
	}
}
