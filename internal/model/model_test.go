package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/intrack/internal/model"
)

func TestIndex(t *testing.T) {
	idx, err := model.FromOneBased(3)
	require.NoError(t, err)
	assert.Equal(t, 3, idx.OneBased())
	assert.Equal(t, 2, idx.ZeroBased())

	z, err := model.FromZeroBased(2)
	require.NoError(t, err)
	assert.Equal(t, idx, z)

	_, err = model.FromOneBased(0)
	assert.Error(t, err)
	_, err = model.FromZeroBased(-1)
	assert.Error(t, err)
	assert.Panics(t, func() { model.MustOneBased(0) })
}

func TestParseDeadline(t *testing.T) {
	d, err := model.ParseDeadline("20/04/2024")
	require.NoError(t, err)
	assert.Equal(t, "20/04/2024", d.String())
	assert.True(t, d.Equal(model.NewDeadline(2024, time.April, 20)))

	for _, bad := range []string{"", "2024-04-20", "20/4/2024", "31/02/2024", "20/13/2024", "tomorrow"} {
		_, err := model.ParseDeadline(bad)
		assert.ErrorIs(t, err, model.ErrInvalidDeadline, bad)
	}
}

func TestDeadlineJSON(t *testing.T) {
	task := model.Task{Name: "OA"}
	task.SetDeadline(model.NewDeadline(2024, time.April, 20))

	data, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"OA","deadline":"20/04/2024"}`, string(data))

	var back model.Task
	require.NoError(t, json.Unmarshal(data, &back))
	require.NotNil(t, back.Deadline)
	assert.True(t, back.Deadline.Equal(*task.Deadline))

	assert.Error(t, json.Unmarshal([]byte(`{"name":"OA","deadline":"2024-04-20"}`), &back))
}

func TestDeadlineDaysFrom(t *testing.T) {
	d := model.NewDeadline(2026, time.March, 5)
	assert.Equal(t, 4, d.DaysFrom(time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, d.DaysFrom(time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, -1, d.DaysFrom(time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)))
}

func TestFieldNormalize(t *testing.T) {
	tests := []struct {
		field   model.Field
		in      string
		want    string
		wantErr bool
	}{
		{model.FieldCompanyName, "  Google ", "Google", false},
		{model.FieldCompanyName, "   ", "", true},
		{model.FieldContactEmail, "jane@google.com", "jane@google.com", false},
		{model.FieldContactEmail, "jane", "", true},
		{model.FieldContactNumber, "91234567", "91234567", false},
		{model.FieldContactNumber, "12", "", true},
		{model.FieldContactNumber, "9123-4567", "", true},
		{model.FieldApplicationStatus, "Accepted", "accepted", false},
		{model.FieldApplicationStatus, "hired", "", true},
		{model.FieldRemark, "", "", false},
	}
	for _, tt := range tests {
		got, err := tt.field.Normalize(tt.in)
		if tt.wantErr {
			var fe *model.FieldError
			assert.ErrorAs(t, err, &fe, "%s %q", tt.field, tt.in)
			continue
		}
		require.NoError(t, err, "%s %q", tt.field, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestTaskListString(t *testing.T) {
	d := model.NewDeadline(2024, time.April, 20)
	l := model.TaskList{{Name: "Resume"}, {Name: "OA", Deadline: &d}}
	assert.Equal(t, "1. Resume\n2. OA (Deadline: 20/04/2024)\n", l.String())
	assert.Equal(t, "", model.TaskList(nil).String())
}

func validInternship(company string) model.Internship {
	return model.Internship{
		CompanyName:       company,
		Location:          "Singapore",
		Description:       "Summer",
		Role:              "Intern",
		ContactName:       "Alex",
		ContactEmail:      "alex@example.com",
		ContactNumber:     "999",
		ApplicationStatus: model.StatusToApply,
		Tasks:             model.TaskList{{Name: "Apply"}},
	}
}

func TestTrackerCopiesOut(t *testing.T) {
	tr := model.NewTracker(nil)
	tr.AddInternship(validInternship("Google"))

	got := tr.FilteredInternships()
	got[0].Tasks[0].Name = "changed"
	got[0].CompanyName = "changed"

	assert.Equal(t, "Google", tr.Internships()[0].CompanyName)
	assert.Equal(t, "Apply", tr.Internships()[0].Tasks[0].Name)
}

func TestTrackerMutationsNotify(t *testing.T) {
	tr := model.NewTracker(nil)
	var kinds []model.ChangeKind
	unsubscribe := tr.Subscribe(func(c model.Change) { kinds = append(kinds, c.Kind) })

	tr.AddInternship(validInternship("Google"))
	id := tr.Internships()[0].ID
	require.NotEqual(t, uuid.Nil, id)

	edited := tr.Internships()[0]
	edited.Remark = "hi"
	require.NoError(t, tr.SetInternship(id, edited))
	tr.UpdateFilter(model.ShowAll)
	require.NoError(t, tr.DeleteInternship(id))
	tr.Reset([]model.Internship{validInternship("Meta")})

	assert.Equal(t, []model.ChangeKind{
		model.ChangeAdded, model.ChangeUpdated, model.ChangeFiltered, model.ChangeRemoved, model.ChangeReset,
	}, kinds)

	unsubscribe()
	tr.AddInternship(validInternship("Grab"))
	assert.Len(t, kinds, 5)

	assert.ErrorIs(t, tr.SetInternship(uuid.New(), edited), model.ErrNotFound)
	assert.ErrorIs(t, tr.DeleteInternship(uuid.New()), model.ErrNotFound)
}

func TestTrackerView(t *testing.T) {
	tr := model.NewTracker(nil)
	for _, c := range []string{"Google", "Meta", "Grab"} {
		tr.AddInternship(validInternship(c))
	}
	all := tr.Internships()
	ids, filtered := tr.View()
	assert.Nil(t, ids)
	assert.False(t, filtered)

	tr.RestoreView([]uuid.UUID{all[2].ID, all[0].ID}, true)
	shown := tr.FilteredInternships()
	require.Len(t, shown, 2)
	assert.Equal(t, "Google", shown[0].CompanyName)
	assert.Equal(t, "Grab", shown[1].CompanyName)
	ids, filtered = tr.View()
	assert.Equal(t, []uuid.UUID{all[0].ID, all[2].ID}, ids)
	assert.True(t, filtered)

	tr.RestoreView(nil, false)
	assert.Len(t, tr.FilteredInternships(), 3)
	ids, filtered = tr.View()
	assert.Nil(t, ids)
	assert.False(t, filtered)
}

func TestTrackerEmptyView(t *testing.T) {
	tr := model.NewTracker(nil)
	tr.AddInternship(validInternship("Google"))

	tr.UpdateFilter(func(model.Internship) bool { return false })
	ids, filtered := tr.View()
	assert.Empty(t, ids)
	assert.True(t, filtered)

	tr.RestoreView(nil, true)
	assert.Empty(t, tr.FilteredInternships())
}

func TestInternshipValidate(t *testing.T) {
	in := validInternship("Google")
	assert.Error(t, in.Validate(), "missing id")

	in.ID = uuid.New()
	assert.NoError(t, in.Validate())

	in.ContactEmail = "bad"
	assert.Error(t, in.Validate())
}

func TestIsSameInternship(t *testing.T) {
	a := validInternship("Google")
	b := validInternship("GOOGLE")
	b.Remark = "different remark"
	assert.True(t, a.IsSameInternship(b))

	b.Role = "Other"
	assert.False(t, a.IsSameInternship(b))
}
