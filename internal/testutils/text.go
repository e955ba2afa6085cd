// Package testutils provides shared helpers for MTM tests: readable text
// diffs, temporary files and ready-made models.
package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mtm/internal/model"
)

// DiffText describes how actual differs from expected, one change per line.
// Deleted text is prefixed with "-", inserted text with "+". Equal text is omitted.
func DiffText(expected, actual string) string {
	if expected == actual {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))

	var b strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(&b, "- %q\n", diff.Text)
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(&b, "+ %q\n", diff.Text)
		}
	}
	return b.String()
}

// AssertTextEqual fails the test with a diff when actual differs from expected.
func AssertTextEqual(t testing.TB, expected, actual string, msgAndArgs ...interface{}) bool {
	t.Helper()
	diff := DiffText(expected, actual)
	if diff == "" {
		return true
	}
	return assert.Fail(t, "text mismatch:\n"+diff, msgAndArgs...)
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// NewManager returns a manager holding persons, using the cheapest key hashing cost.
func NewManager(t testing.TB, persons ...model.Person) *model.Manager {
	t.Helper()
	ab := model.NewAddressBook()
	for _, p := range persons {
		require.NoError(t, ab.AddPerson(p))
	}
	m := model.NewManager(ab, model.Settings{})
	m.SetKeyCost(bcrypt.MinCost)
	return m
}
