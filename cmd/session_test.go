package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/intrack/internal/command"
	"github.com/Tiliavir/intrack/internal/config"
	"github.com/Tiliavir/intrack/internal/messages"
	"github.com/Tiliavir/intrack/internal/model"
	"github.com/Tiliavir/intrack/internal/storage"
)

const addGoogle = "add /com Google /loc Singapore /desc Backend /role SWE Intern " +
	"/cname Jane /cemail jane@google.com /cnum 98765432 /status pending"

const addMeta = "add /com Meta /loc London /desc Data /role Data Intern " +
	"/cname Sam /cemail sam@meta.com /cnum 1234567 /status to_apply"

func testSession(t *testing.T) *session {
	t.Helper()
	base = t.TempDir()
	cfg = config.Config{FilterCacheSize: 8}
	s, err := openSession()
	require.NoError(t, err)
	return s
}

func runLines(t *testing.T, s *session, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, s.loop(strings.NewReader(strings.Join(lines, "\n")), &out, false))
	return out.String()
}

func TestShellSetDeadlineFlow(t *testing.T) {
	s := testSession(t)
	out := runLines(t, s,
		addGoogle,
		"addtask 1 /task OA",
		"setdeadline 1 /selecttask 1 /deadline 31/02/2024",
		"setdeadline 1 /selecttask 2 /deadline 20/04/2024",
		"setdeadline 2 /selecttask 1 /deadline 20/04/2024",
		"setdeadline 1 /selecttask 1 /deadline 20/04/2024",
		"bogus",
		"exit",
		addMeta,
	)

	assert.Contains(t, out, "New internship added:")
	assert.Contains(t, out, "New task added: OA")
	assert.Contains(t, out, model.DeadlineConstraints)
	assert.Contains(t, out, messages.InvalidTaskDisplayedIndex)
	assert.Contains(t, out, messages.InvalidInternshipDisplayedIndex)
	assert.Contains(t, out, "Deadline Added: 20/04/2024")
	assert.Contains(t, out, messages.UnknownCommand)
	assert.Contains(t, out, command.ExitMessage)

	snap, err := storage.Load(storage.DataFilePath(base))
	require.NoError(t, err)
	require.Len(t, snap.Internships, 1, "lines after exit must not run")
	tasks := snap.Internships[0].Tasks
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].Deadline)
	assert.Equal(t, "20/04/2024", tasks[0].Deadline.String())
}

func TestViewPersistsBetweenSessions(t *testing.T) {
	s := testSession(t)
	out := runLines(t, s, addGoogle, addMeta, "find meta")
	assert.Contains(t, out, "1 internships listed!")
	assert.Contains(t, out, "1. Company Name: Meta")

	next, err := openSession()
	require.NoError(t, err)
	shown := next.tracker.FilteredInternships()
	require.Len(t, shown, 1)
	assert.Equal(t, "Meta", shown[0].CompanyName)

	// Index 1 now addresses Meta, not Google.
	runLines(t, next, "addtask 1 /task Interview")
	snap, err := storage.Load(storage.DataFilePath(base))
	require.NoError(t, err)
	assert.Empty(t, snap.Internships[0].Tasks)
	require.Len(t, snap.Internships[1].Tasks, 1)
	assert.Nil(t, snap.View, "addtask resets the filter")
	assert.False(t, snap.Filtered)
}

func TestEmptyViewPersistsBetweenSessions(t *testing.T) {
	s := testSession(t)
	out := runLines(t, s, addGoogle, "addtask 1 /task OA", "find nosuchco")
	assert.Contains(t, out, "0 internships listed!")

	next, err := openSession()
	require.NoError(t, err)
	assert.Empty(t, next.tracker.FilteredInternships())

	out = runLines(t, next, "setdeadline 1 /selecttask 1 /deadline 20/04/2024")
	assert.Contains(t, out, messages.InvalidInternshipDisplayedIndex)
	assert.NotContains(t, out, "Deadline Added")

	snap, err := storage.Load(storage.DataFilePath(base))
	require.NoError(t, err)
	assert.Nil(t, snap.Internships[0].Tasks[0].Deadline)
}

func TestSaveSkipsUnchangedSession(t *testing.T) {
	s := testSession(t)
	out := runLines(t, s, "help")
	assert.Contains(t, out, command.AddUsage)

	assert.NoFileExists(t, storage.DataFilePath(base))
}

func TestListPrintsDisplayedInternships(t *testing.T) {
	s := testSession(t)
	out := runLines(t, s, "list")
	assert.Contains(t, out, command.ListSuccess)
	assert.Contains(t, out, "No internships found.")

	out = runLines(t, s, addGoogle, addMeta, "list")
	assert.Contains(t, out, "1. Company Name: Google")
	assert.Contains(t, out, "2. Company Name: Meta")
}

func TestShellDuplicatePrefixes(t *testing.T) {
	s := testSession(t)
	out := runLines(t, s, addGoogle, "addtask 1 /task OA", "setdeadline 1 /selecttask 1 /deadline 20/04/2024 /deadline 21/04/2024")
	assert.Contains(t, out, messages.DuplicateFields+"/deadline")
}
