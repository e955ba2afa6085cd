package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtm/internal/model"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.yaml"))

	snap, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, snap.AddressBook)
	assert.Empty(t, snap.AddressBook.Persons)
	assert.Equal(t, model.Settings{}, snap.Settings)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "addressbook.yaml")
	store := NewFileStore(path)
	assert.Equal(t, path, store.Path())

	alex := model.NewPerson("Alex Yeoh", "87438807", "alexyeoh@example.com", "Blk 30", []string{"friends"})
	alex.Remark = "Likes coffee"
	alex.Private = true
	snap := Snapshot{
		Settings: model.Settings{Theme: "dark", Locked: true, KeyHash: "$2a$04$hash"},
		AddressBook: &model.AddressBook{
			Persons: []model.Person{alex},
			Groups:  []model.Group{{Name: "friends", Members: []string{alex.ID}}},
		},
	}

	require.NoError(t, store.Save(snap))
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}

func TestFileStore_SaveNilAddressBook(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "ab.yaml"))
	require.NoError(t, store.Save(Snapshot{}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.AddressBook.Persons)
}

func TestFileStore_LoadInvalid(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr string
	}{
		{
			name:        "malformed yaml",
			content:     "address_book: [unclosed",
			expectedErr: "failed to parse yaml",
		},
		{
			name: "person without id",
			content: `address_book:
  persons:
    - name: Alex
`,
			expectedErr: `person "Alex" has no id`,
		},
		{
			name: "duplicate names",
			content: `address_book:
  persons:
    - id: a
      name: Alex
    - id: b
      name: alex
`,
			expectedErr: "already exists",
		},
		{
			name: "dangling group member",
			content: `address_book:
  persons:
    - id: a
      name: Alex
  groups:
    - name: friends
      members: [zzz]
`,
			expectedErr: "references unknown person zzz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ab.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			_, err := NewFileStore(path).Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestFileStore_Exists(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "ab.yaml"))
	assert.False(t, store.Exists())
	require.NoError(t, store.Save(Snapshot{}))
	assert.True(t, store.Exists())
}

func TestSample(t *testing.T) {
	snap, err := Sample()
	require.NoError(t, err)
	assert.Len(t, snap.AddressBook.Persons, 6)
	assert.Equal(t, "Alex Yeoh", snap.AddressBook.Persons[0].Name)

	members, err := snap.AddressBook.Members("friends")
	require.NoError(t, err)
	assert.Len(t, members, 2)
	assert.Equal(t, model.Settings{}, snap.Settings)
}
