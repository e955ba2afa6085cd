package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionedAddressBook_UndoRedo(t *testing.T) {
	alex, bernice, charlotte := samplePersons()
	v := NewVersionedAddressBook(NewAddressBook())

	assert.False(t, v.CanUndo())
	assert.ErrorIs(t, v.Undo(), ErrNoUndo)
	assert.ErrorIs(t, v.Redo(), ErrNoRedo)

	require.NoError(t, v.Current().AddPerson(alex))
	v.Commit()
	require.NoError(t, v.Current().AddPerson(bernice))
	v.Commit()

	require.NoError(t, v.Undo())
	assert.Len(t, v.Current().Persons, 1)
	require.NoError(t, v.Undo())
	assert.Empty(t, v.Current().Persons)
	assert.ErrorIs(t, v.Undo(), ErrNoUndo)

	require.NoError(t, v.Redo())
	assert.Len(t, v.Current().Persons, 1)

	// A new commit discards the undone branch.
	require.NoError(t, v.Current().AddPerson(charlotte))
	v.Commit()
	assert.False(t, v.CanRedo())
	assert.ErrorIs(t, v.Redo(), ErrNoRedo)

	require.NoError(t, v.Undo())
	assert.Equal(t, []Person{alex}, v.Current().Persons)
}

func TestVersionedAddressBook_UncommittedChangesLostOnUndo(t *testing.T) {
	alex, bernice, _ := samplePersons()
	v := NewVersionedAddressBook(&AddressBook{Persons: []Person{alex}})

	require.NoError(t, v.Current().AddPerson(bernice))
	v.Commit()
	v.Current().Persons[0].Name = "Scribbled"

	require.NoError(t, v.Undo())
	require.NoError(t, v.Redo())
	assert.Equal(t, "Alex Yeoh", v.Current().Persons[0].Name)
}

func TestVersionedAddressBook_Reset(t *testing.T) {
	alex, _, _ := samplePersons()
	v := NewVersionedAddressBook(&AddressBook{Persons: []Person{alex}})

	v.Reset(NewAddressBook())
	v.Commit()
	assert.Empty(t, v.Current().Persons)

	require.NoError(t, v.Undo())
	assert.Len(t, v.Current().Persons, 1)
}
