package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ApplicationStatus is the stage an internship application is in.
type ApplicationStatus string

const (
	StatusToApply  ApplicationStatus = "to_apply"
	StatusPending  ApplicationStatus = "pending"
	StatusRejected ApplicationStatus = "rejected"
	StatusAccepted ApplicationStatus = "accepted"
	StatusOngoing  ApplicationStatus = "ongoing"
)

var statuses = []ApplicationStatus{StatusToApply, StatusPending, StatusRejected, StatusAccepted, StatusOngoing}

// ParseApplicationStatus accepts any casing of a known status.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, st := range statuses {
		if string(st) == want {
			return st, nil
		}
	}
	return "", errors.New(statusConstraints)
}

var statusConstraints = func() string {
	names := make([]string, len(statuses))
	for i, st := range statuses {
		names[i] = string(st)
	}
	return "Application status should be one of: " + strings.Join(names, ", ")
}()

// Field names a user-editable internship attribute.
type Field int

const (
	FieldCompanyName Field = iota
	FieldLocation
	FieldDescription
	FieldRole
	FieldContactName
	FieldContactEmail
	FieldContactNumber
	FieldApplicationStatus
	FieldRemark
)

// Fields lists every Field in display order.
var Fields = []Field{
	FieldCompanyName, FieldLocation, FieldDescription, FieldRole,
	FieldContactName, FieldContactEmail, FieldContactNumber,
	FieldApplicationStatus, FieldRemark,
}

var fieldLabels = map[Field]string{
	FieldCompanyName:       "Company Name",
	FieldLocation:          "Location",
	FieldDescription:       "Description",
	FieldRole:              "Role",
	FieldContactName:       "Contact Name",
	FieldContactEmail:      "Contact Email",
	FieldContactNumber:     "Contact Number",
	FieldApplicationStatus: "Application Status",
	FieldRemark:            "Remark",
}

func (f Field) String() string { return fieldLabels[f] }

var (
	emailPattern  = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*$`)
	numberPattern = regexp.MustCompile(`^\d{3,}$`)
)

// FieldError reports a value that violates a field's constraints.
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// Normalize validates raw for field f and returns the value to store.
func (f Field) Normalize(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	switch f {
	case FieldRemark:
		return v, nil
	case FieldContactEmail:
		if !emailPattern.MatchString(v) {
			return "", &FieldError{Field: f, Message: "Contact emails should be of the format local-part@domain"}
		}
	case FieldContactNumber:
		if !numberPattern.MatchString(v) {
			return "", &FieldError{Field: f, Message: "Contact numbers should only contain digits, and it should be at least 3 digits long"}
		}
	case FieldApplicationStatus:
		st, err := ParseApplicationStatus(v)
		if err != nil {
			return "", &FieldError{Field: f, Message: err.Error()}
		}
		return string(st), nil
	default:
		if v == "" {
			return "", &FieldError{Field: f, Message: f.String() + " should not be blank"}
		}
	}
	return v, nil
}

// Internship is a tracked application with its contact details and tasks.
type Internship struct {
	ID                uuid.UUID         `json:"id"`
	CompanyName       string            `json:"company_name"`
	Location          string            `json:"location"`
	Description       string            `json:"description"`
	Role              string            `json:"role"`
	ContactName       string            `json:"contact_name"`
	ContactEmail      string            `json:"contact_email"`
	ContactNumber     string            `json:"contact_number"`
	ApplicationStatus ApplicationStatus `json:"application_status"`
	Remark            string            `json:"remark"`
	Tasks             TaskList          `json:"tasks"`
}

// Get returns the stored value of f.
func (in Internship) Get(f Field) string {
	switch f {
	case FieldCompanyName:
		return in.CompanyName
	case FieldLocation:
		return in.Location
	case FieldDescription:
		return in.Description
	case FieldRole:
		return in.Role
	case FieldContactName:
		return in.ContactName
	case FieldContactEmail:
		return in.ContactEmail
	case FieldContactNumber:
		return in.ContactNumber
	case FieldApplicationStatus:
		return string(in.ApplicationStatus)
	case FieldRemark:
		return in.Remark
	}
	return ""
}

// Set stores an already normalized value for f.
func (in *Internship) Set(f Field, v string) {
	switch f {
	case FieldCompanyName:
		in.CompanyName = v
	case FieldLocation:
		in.Location = v
	case FieldDescription:
		in.Description = v
	case FieldRole:
		in.Role = v
	case FieldContactName:
		in.ContactName = v
	case FieldContactEmail:
		in.ContactEmail = v
	case FieldContactNumber:
		in.ContactNumber = v
	case FieldApplicationStatus:
		in.ApplicationStatus = ApplicationStatus(v)
	case FieldRemark:
		in.Remark = v
	}
}

// Validate checks every field; used on data loaded from disk.
func (in Internship) Validate() error {
	if in.ID == uuid.Nil {
		return fmt.Errorf("internship %q has no id", in.CompanyName)
	}
	for _, f := range Fields {
		if _, err := f.Normalize(in.Get(f)); err != nil {
			return fmt.Errorf("internship %s: %w", in.ID, err)
		}
	}
	for i, t := range in.Tasks {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("internship %s: task %d has no name", in.ID, i+1)
		}
	}
	return nil
}

// Clone returns a copy that shares no task storage with in.
func (in Internship) Clone() Internship {
	out := in
	out.Tasks = in.Tasks.Clone()
	return out
}

// IsSameInternship reports whether other describes the same position:
// company, role and location match ignoring case.
func (in Internship) IsSameInternship(other Internship) bool {
	return strings.EqualFold(in.CompanyName, other.CompanyName) &&
		strings.EqualFold(in.Role, other.Role) &&
		strings.EqualFold(in.Location, other.Location)
}
