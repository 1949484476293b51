package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/intrack/internal/model"
)

func sample() model.Internship {
	soon := model.NewDeadline(2026, 3, 5)
	past := model.NewDeadline(2026, 2, 1)
	later := model.NewDeadline(2026, 4, 1)
	return model.Internship{
		CompanyName:       "Google",
		Location:          "Singapore",
		Role:              "SWE Intern",
		ApplicationStatus: model.StatusPending,
		Tasks: model.TaskList{
			{Name: "Resume", Deadline: &past},
			{Name: "OA", Deadline: &later},
			{Name: "Interview", Deadline: &soon},
			{Name: "Thank-you note"},
		},
	}
}

var fixedNow = time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)

func TestNewEnv(t *testing.T) {
	env := NewEnv(sample(), fixedNow)
	assert.Equal(t, "Google", env.Company)
	assert.Equal(t, "pending", env.Status)
	assert.Equal(t, 4, env.Tasks)
	assert.Equal(t, 2, env.PendingDeadlines)
	assert.Equal(t, 4, env.NextDeadline)
}

func TestNewEnvWithoutDeadlines(t *testing.T) {
	env := NewEnv(model.Internship{CompanyName: "Meta"}, fixedNow)
	assert.Equal(t, -1, env.NextDeadline)
	assert.Zero(t, env.PendingDeadlines)
}

func TestCompile(t *testing.T) {
	c, err := NewCompiler(8, nil)
	require.NoError(t, err)
	c.now = func() time.Time { return fixedNow }

	tests := []struct {
		expression string
		want       bool
	}{
		{`status == "pending"`, true},
		{`status == "accepted"`, false},
		{`company contains "oog" && location == "Singapore"`, true},
		{`next_deadline >= 0 && next_deadline <= 7`, true},
		{`pending_deadlines > 2`, false},
		{`tasks == 4`, true},
	}
	for _, tt := range tests {
		pred, err := c.Compile(tt.expression)
		require.NoError(t, err, tt.expression)
		assert.Equal(t, tt.want, pred(sample()), tt.expression)
	}
}

func TestCompileRejectsNonBoolean(t *testing.T) {
	c, err := NewCompiler(8, nil)
	require.NoError(t, err)

	_, err = c.Compile(`tasks + 1`)
	assert.Error(t, err)

	_, err = c.Compile(`unknown_field == 1`)
	assert.Error(t, err)
}

func TestCompileCachesPrograms(t *testing.T) {
	c, err := NewCompiler(2, nil)
	require.NoError(t, err)

	for _, e := range []string{`tasks > 0`, `tasks > 0`, `tasks > 1`, `tasks > 2`} {
		_, err := c.Compile(e)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, c.Cached())
}
