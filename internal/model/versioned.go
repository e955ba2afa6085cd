package model

import "errors"

// Errors returned when there is no state to move to.
var (
	ErrNoUndo = errors.New("no more commands to undo")
	ErrNoRedo = errors.New("no more commands to redo")
)

// VersionedAddressBook keeps committed snapshots of an address book so that
// changes can be undone and redone. Commands mutate a working copy; snapshots
// are never handed out.
type VersionedAddressBook struct {
	working *AddressBook
	states  []*AddressBook
	pointer int
}

// NewVersionedAddressBook starts a history whose first state is a copy of initial.
func NewVersionedAddressBook(initial *AddressBook) *VersionedAddressBook {
	return &VersionedAddressBook{
		working: initial.Clone(),
		states:  []*AddressBook{initial.Clone()},
		pointer: 0,
	}
}

// Current returns the working copy of the address book.
func (v *VersionedAddressBook) Current() *AddressBook {
	return v.working
}

// Commit records the working copy as a new state. Any undone states are discarded.
func (v *VersionedAddressBook) Commit() {
	v.states = append(v.states[:v.pointer+1], v.working.Clone())
	v.pointer++
}

// CanUndo reports whether an earlier state exists.
func (v *VersionedAddressBook) CanUndo() bool {
	return v.pointer > 0
}

// CanRedo reports whether an undone state exists.
func (v *VersionedAddressBook) CanRedo() bool {
	return v.pointer < len(v.states)-1
}

// Undo restores the previous committed state.
func (v *VersionedAddressBook) Undo() error {
	if !v.CanUndo() {
		return ErrNoUndo
	}
	v.pointer--
	v.working = v.states[v.pointer].Clone()
	return nil
}

// Redo restores the next committed state.
func (v *VersionedAddressBook) Redo() error {
	if !v.CanRedo() {
		return ErrNoRedo
	}
	v.pointer++
	v.working = v.states[v.pointer].Clone()
	return nil
}

// Reset replaces the working copy with a copy of ab. Callers commit afterwards.
func (v *VersionedAddressBook) Reset(ab *AddressBook) {
	v.working = ab.Clone()
}
