package command

import (
	"fmt"
	"strings"

	"github.com/Tiliavir/intrack/internal/messages"
	"github.com/Tiliavir/intrack/internal/model"
)

const (
	AddWord    = "add"
	EditWord   = "edit"
	DeleteWord = "delete"
)

var AddUsage = AddWord + ": Adds an internship to the tracker. Parameters: " +
	PrefixCompanyName.String() + " COMPANY_NAME " +
	PrefixLocation.String() + " LOCATION " +
	PrefixDescription.String() + " DESCRIPTION " +
	PrefixRole.String() + " ROLE " +
	PrefixContactName.String() + " CONTACT_NAME " +
	PrefixContactEmail.String() + " CONTACT_EMAIL " +
	PrefixContactNumber.String() + " CONTACT_NUMBER " +
	PrefixApplicationStatus.String() + " STATUS " +
	"[" + PrefixRemark.String() + " REMARK]\n" +
	"Example: " + AddWord + " /com Google /loc Singapore /desc Backend team /role SWE Intern " +
	"/cname Jane Doe /cemail jane@google.com /cnum 91234567 /status to_apply"

var EditUsage = EditWord + ": Edits the details of the internship identified by the index number " +
	"used in the displayed internship list. Existing values will be overwritten by the input values.\n" +
	"Parameters: INDEX (must be a positive integer) " +
	"[/com COMPANY_NAME] [/loc LOCATION] [/desc DESCRIPTION] [/role ROLE] " +
	"[/cname CONTACT_NAME] [/cemail CONTACT_EMAIL] [/cnum CONTACT_NUMBER] " +
	"[/status STATUS] [/remark REMARK]\n" +
	"Example: " + EditWord + " 1 /status pending /remark Interview on Monday"

var DeleteUsage = DeleteWord + ": Deletes the internship identified by the index number used in the " +
	"displayed internship list.\nParameters: INDEX (must be a positive integer)\n" +
	"Example: " + DeleteWord + " 1"

const (
	AddSuccess          = "New internship added: %s"
	EditSuccess         = "Edited Internship: %s"
	DeleteSuccess       = "Deleted Internship: %s"
	DuplicateInternship = "This internship already exists in the tracker."
	NotEdited           = "At least one field to edit must be provided."
)

// Add adds a new internship.
type Add struct {
	Internship model.Internship
}

func (c Add) Execute(m model.Model) (Result, error) {
	if m.HasInternship(c.Internship) {
		return Result{}, Fail(KindDuplicateInternship, DuplicateInternship)
	}
	m.AddInternship(c.Internship)
	return Result{Feedback: fmt.Sprintf(AddSuccess, messages.Format(c.Internship))}, nil
}

func (c Add) String() string {
	return fmt.Sprintf("Add{company=%s, role=%s}", c.Internship.CompanyName, c.Internship.Role)
}

// Edit overwrites selected fields of a displayed internship.
type Edit struct {
	Index model.Index
	// Fields holds normalized values keyed by the field they replace.
	Fields map[model.Field]string
}

func (c Edit) Execute(m model.Model) (Result, error) {
	if len(c.Fields) == 0 {
		return Result{}, Fail(KindNothingToEdit, NotEdited)
	}
	target, err := displayedInternship(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	edited := target.Clone()
	for f, v := range c.Fields {
		edited.Set(f, v)
	}
	if !target.IsSameInternship(edited) && m.HasInternship(edited) {
		return Result{}, Fail(KindDuplicateInternship, DuplicateInternship)
	}

	if err := m.SetInternship(target.ID, edited); err != nil {
		return Result{}, fmt.Errorf("edit internship: %w", err)
	}
	m.UpdateFilter(model.ShowAll)
	return Result{Feedback: fmt.Sprintf(EditSuccess, messages.Format(edited))}, nil
}

func (c Edit) String() string {
	parts := make([]string, 0, len(c.Fields))
	for _, f := range model.Fields {
		if v, ok := c.Fields[f]; ok {
			parts = append(parts, f.String()+"="+v)
		}
	}
	return fmt.Sprintf("Edit{index=%s, %s}", c.Index, strings.Join(parts, ", "))
}

// Delete removes a displayed internship.
type Delete struct {
	Index model.Index
}

func (c Delete) Execute(m model.Model) (Result, error) {
	target, err := displayedInternship(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteInternship(target.ID); err != nil {
		return Result{}, fmt.Errorf("delete internship: %w", err)
	}
	return Result{Feedback: fmt.Sprintf(DeleteSuccess, messages.Format(target))}, nil
}

func (c Delete) String() string {
	return fmt.Sprintf("Delete{index=%s}", c.Index)
}
