package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtm/internal/model"
	"mtm/internal/parser"
	"mtm/internal/storage"
	"mtm/internal/testutils"
)

type testShell struct {
	handler *Handler
	manager *model.Manager
	store   *storage.FileStore
	out     *bytes.Buffer
}

func newTestShell(t *testing.T) *testShell {
	t.Helper()
	require.NoError(t, InitializeServices(true, false))

	m := testutils.NewManager(t,
		model.NewPerson("Alex Yeoh", "87438807", "alexyeoh@example.com", "Blk 30 Geylang Street 29", []string{"friends"}),
		model.NewPerson("Bernice Yu", "99272758", "berniceyu@example.com", "Blk 30 Lorong 3 Serangoon Gardens", nil),
	)
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "addressbook.yaml"))
	out := &bytes.Buffer{}

	h, err := NewHandler(m, store, out)
	require.NoError(t, err)
	return &testShell{handler: h, manager: m, store: store, out: out}
}

func TestHandler_ExecuteSavesAfterSuccess(t *testing.T) {
	ts := newTestShell(t)
	assert.False(t, ts.store.Exists())

	result, err := ts.handler.Execute("delete 1")
	require.NoError(t, err)
	assert.Contains(t, result.Feedback, "Alex Yeoh")
	assert.True(t, ts.store.Exists())

	snap, err := ts.store.Load()
	require.NoError(t, err)
	require.Len(t, snap.AddressBook.Persons, 1)
	assert.Equal(t, "Bernice Yu", snap.AddressBook.Persons[0].Name)
}

func TestHandler_ExecuteFailureDoesNotSave(t *testing.T) {
	ts := newTestShell(t)

	_, err := ts.handler.Execute("delete 9")
	require.Error(t, err)
	assert.False(t, ts.store.Exists())
	assert.Equal(t, []string{"delete 9"}, ts.manager.History())
}

func TestHandler_LockGate(t *testing.T) {
	ts := newTestShell(t)
	require.NoError(t, ts.manager.SeedKey("pw"))

	result, err := ts.handler.Execute("key pw")
	require.NoError(t, err)
	assert.Equal(t, "MTM locked!", result.Feedback)

	_, err = ts.handler.Execute("delete 1")
	assert.ErrorIs(t, err, parser.ErrRestricted)

	_, err = ts.handler.Execute("nonsense")
	assert.ErrorIs(t, err, parser.ErrRestricted)

	result, err = ts.handler.Execute("l")
	require.NoError(t, err)
	assert.True(t, result.ShowList)

	_, err = ts.handler.Execute("k pw")
	require.NoError(t, err)
	_, err = ts.handler.Execute("delete 1")
	assert.NoError(t, err)

	snap, err := ts.store.Load()
	require.NoError(t, err)
	assert.False(t, snap.Settings.Locked)
	assert.NotEmpty(t, snap.Settings.KeyHash)
}

func TestHandler_HistoryRedactsKeys(t *testing.T) {
	ts := newTestShell(t)

	_, _ = ts.handler.Execute("set  old new")
	_, _ = ts.handler.Execute("k wrong")
	_, _ = ts.handler.Execute("  list  ")

	assert.Equal(t, []string{"set ***", "k ***", "list"}, ts.manager.History())
}

func TestHandler_ProcessUnknownSuggests(t *testing.T) {
	ts := newTestShell(t)

	assert.False(t, ts.handler.Process("lst"))
	out := ts.out.String()
	assert.Contains(t, out, parser.MessageUnknownCommand)
	assert.Contains(t, out, "Did you mean: list")
}

func TestHandler_ProcessDisplaysResults(t *testing.T) {
	ts := newTestShell(t)

	ts.handler.Process("list")
	out := ansi.Strip(ts.out.String())
	assert.Contains(t, out, "Listed all persons")
	assert.Contains(t, out, "Alex Yeoh")
	assert.Contains(t, out, "Bernice Yu")

	ts.out.Reset()
	ts.handler.Process("select 2")
	out = ansi.Strip(ts.out.String())
	assert.Contains(t, out, "Selected Person: 2")
	assert.Contains(t, out, "Phone: 99272758")

	ts.out.Reset()
	ts.handler.Process("help")
	out = ansi.Strip(ts.out.String())
	assert.Contains(t, out, "MTM command reference")
	assert.Contains(t, out, "Showing help.")

	ts.out.Reset()
	assert.True(t, ts.handler.Process("exit"))
}

func TestHandler_SaveFailure(t *testing.T) {
	ts := newTestShell(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	h, err := NewHandler(ts.manager, storage.NewFileStore(filepath.Join(blocker, "book.yaml")), ts.out)
	require.NoError(t, err)

	result, err := h.Execute("clear")
	assert.ErrorContains(t, err, "failed to save address book")
	assert.NotEmpty(t, result.Feedback)
}

func TestHandler_NilStore(t *testing.T) {
	ts := newTestShell(t)
	h, err := NewHandler(ts.manager, nil, ts.out)
	require.NoError(t, err)

	_, err = h.Execute("clear")
	assert.NoError(t, err)
	assert.Empty(t, ts.manager.FilteredPersons())
}

func TestHandler_GroupNames(t *testing.T) {
	ts := newTestShell(t)
	assert.Empty(t, ts.handler.GroupNames())

	_, err := ts.handler.Execute("create friends")
	require.NoError(t, err)
	assert.Equal(t, []string{"friends"}, ts.handler.GroupNames())
}

func TestRedact(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"key secret", "key ***"},
		{"k secret", "k ***"},
		{"set a b", "set ***"},
		{"st a b", "st ***"},
		{"key", "key"},
		{"  list  ", "list"},
		{"keys secret", "keys secret"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, redact(tt.input), tt.input)
	}
}

func TestRunScript(t *testing.T) {
	ts := newTestShell(t)

	script := strings.Join([]string{
		"# switch to plain output",
		"theme plain",
		"",
		"history",
		"exit",
		"delete 1",
	}, "\n")

	require.NoError(t, ts.handler.RunScript(strings.NewReader(script)))
	testutils.AssertTextEqual(t,
		"Theme changed to plain\n"+
			"Entered commands (from most recent to earliest):\ntheme plain\n"+
			"Exiting Address Book as requested ...\n",
		ts.out.String())
	assert.Len(t, ts.manager.FilteredPersons(), 2)
}

func TestRunScript_StopsAtFirstError(t *testing.T) {
	ts := newTestShell(t)

	err := ts.handler.RunScript(strings.NewReader("list\nbogus\ndelete 1\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrUnknownCommand)
	assert.True(t, strings.HasPrefix(err.Error(), "line 2: "))
	assert.Len(t, ts.manager.FilteredPersons(), 2)
}
