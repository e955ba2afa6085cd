package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Errors returned by lock key operations.
var (
	ErrWrongKey = errors.New("incorrect key")
	ErrNoKey    = errors.New("no key has been set")
)

// DefaultTheme is the theme used when none has been chosen.
const DefaultTheme = "default"

// SortField selects the person attribute the displayed list is ordered by.
type SortField string

// Supported sort fields.
const (
	SortByName    SortField = "name"
	SortByPhone   SortField = "phone"
	SortByEmail   SortField = "email"
	SortByAddress SortField = "address"
)

// SortFields lists every supported sort field.
var SortFields = []SortField{SortByName, SortByPhone, SortByEmail, SortByAddress}

// ParseSortField converts user input into a SortField.
func ParseSortField(s string) (SortField, bool) {
	for _, f := range SortFields {
		if string(f) == strings.ToLower(s) {
			return f, true
		}
	}
	return "", false
}

// PersonPredicate selects persons for the displayed list.
type PersonPredicate func(Person) bool

// ShowAllPersons is the predicate that keeps every person.
func ShowAllPersons(Person) bool { return true }

// Settings are the user preferences persisted alongside the address book.
type Settings struct {
	Theme   string `yaml:"theme,omitempty"`
	Locked  bool   `yaml:"locked,omitempty"`
	KeyHash string `yaml:"key_hash,omitempty"`
}

// Model is the state that commands read and change.
type Model interface {
	AddressBook() *AddressBook
	FilteredPersons() []Person
	UpdateFilter(pred PersonPredicate)
	SortPersons(field SortField)

	AddPerson(p Person) error
	SetPerson(target, edited Person) error
	DeletePerson(p Person) error
	ResetData(ab *AddressBook)

	SelectPerson(p Person)
	Selected() (Person, bool)

	CreateGroup(name string) error
	RemoveGroup(name string) error
	RenameGroup(oldName, newName string) error
	AssignToGroup(name string, persons []Person) (int, error)
	GroupMembers(name string) ([]Person, error)

	Commit()
	Undo() error
	Redo() error

	IsLocked() bool
	ToggleLock(key string) (bool, error)
	ChangeKey(oldKey, newKey string) error

	Theme() string
	SetTheme(name string)

	History() []string
	RecordInput(input string)
}

// Manager is the in-memory Model implementation.
type Manager struct {
	book      *VersionedAddressBook
	filter    PersonPredicate
	sortField SortField
	selected  string
	settings  Settings
	history   []string
	keyCost   int
}

var _ Model = (*Manager)(nil)

// NewManager creates a manager over a copy of ab with the given settings.
func NewManager(ab *AddressBook, settings Settings) *Manager {
	if ab == nil {
		ab = NewAddressBook()
	}
	if settings.Theme == "" {
		settings.Theme = DefaultTheme
	}
	return &Manager{
		book:     NewVersionedAddressBook(ab),
		filter:   ShowAllPersons,
		settings: settings,
		keyCost:  bcrypt.DefaultCost,
	}
}

// SetKeyCost changes the bcrypt cost used for new key hashes.
func (m *Manager) SetKeyCost(cost int) {
	m.keyCost = cost
}

// SeedKey sets the lock key if none has been stored yet.
func (m *Manager) SeedKey(key string) error {
	if m.settings.KeyHash != "" || key == "" {
		return nil
	}
	return m.setKey(key)
}

// Settings returns the current user settings.
func (m *Manager) Settings() Settings {
	return m.settings
}

// AddressBook returns the working copy of the address book.
func (m *Manager) AddressBook() *AddressBook {
	return m.book.Current()
}

// FilteredPersons returns the persons matching the current filter, in display order.
func (m *Manager) FilteredPersons() []Person {
	var out []Person
	for _, p := range m.book.Current().Persons {
		if m.filter(p) {
			out = append(out, p)
		}
	}
	if m.sortField != "" {
		key := sortKey(m.sortField)
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(key(out[i])) < strings.ToLower(key(out[j]))
		})
	}
	return out
}

// UpdateFilter replaces the display predicate. A nil predicate shows everyone.
func (m *Manager) UpdateFilter(pred PersonPredicate) {
	if pred == nil {
		pred = ShowAllPersons
	}
	m.filter = pred
}

// SortPersons orders the displayed list by field. The stored order is unchanged.
func (m *Manager) SortPersons(field SortField) {
	m.sortField = field
}

// AddPerson adds p and resets the filter so the new person is visible.
func (m *Manager) AddPerson(p Person) error {
	if err := m.book.Current().AddPerson(p); err != nil {
		return err
	}
	m.UpdateFilter(ShowAllPersons)
	return nil
}

// SetPerson replaces target by edited.
func (m *Manager) SetPerson(target, edited Person) error {
	return m.book.Current().SetPerson(target, edited)
}

// DeletePerson removes p and clears the selection if it pointed at p.
func (m *Manager) DeletePerson(p Person) error {
	if err := m.book.Current().RemovePerson(p); err != nil {
		return err
	}
	if m.selected == p.ID {
		m.selected = ""
	}
	return nil
}

// ResetData replaces the whole address book.
func (m *Manager) ResetData(ab *AddressBook) {
	m.book.Reset(ab)
	m.selected = ""
	m.UpdateFilter(ShowAllPersons)
}

// SelectPerson marks p as selected.
func (m *Manager) SelectPerson(p Person) {
	m.selected = p.ID
}

// Selected returns the selected person, if it still exists.
func (m *Manager) Selected() (Person, bool) {
	if m.selected == "" {
		return Person{}, false
	}
	return m.book.Current().PersonByID(m.selected)
}

// CreateGroup adds an empty group.
func (m *Manager) CreateGroup(name string) error {
	return m.book.Current().AddGroup(name)
}

// RemoveGroup deletes a group.
func (m *Manager) RemoveGroup(name string) error {
	return m.book.Current().RemoveGroup(name)
}

// RenameGroup renames a group.
func (m *Manager) RenameGroup(oldName, newName string) error {
	return m.book.Current().RenameGroup(oldName, newName)
}

// AssignToGroup adds persons to a group and returns how many were newly added.
func (m *Manager) AssignToGroup(name string, persons []Person) (int, error) {
	ids := make([]string, len(persons))
	for i, p := range persons {
		ids[i] = p.ID
	}
	return m.book.Current().AssignToGroup(name, ids)
}

// GroupMembers returns the persons in a group.
func (m *Manager) GroupMembers(name string) ([]Person, error) {
	return m.book.Current().Members(name)
}

// Commit records the current address book as a new undoable state.
func (m *Manager) Commit() {
	m.book.Commit()
}

// Undo restores the previous state and shows every person.
func (m *Manager) Undo() error {
	if err := m.book.Undo(); err != nil {
		return err
	}
	m.UpdateFilter(ShowAllPersons)
	return nil
}

// Redo restores the next state and shows every person.
func (m *Manager) Redo() error {
	if err := m.book.Redo(); err != nil {
		return err
	}
	m.UpdateFilter(ShowAllPersons)
	return nil
}

// IsLocked reports whether restricted commands are blocked.
func (m *Manager) IsLocked() bool {
	return m.settings.Locked
}

// ToggleLock flips the lock state when key matches. It returns the new state.
func (m *Manager) ToggleLock(key string) (bool, error) {
	if err := m.checkKey(key); err != nil {
		return m.settings.Locked, err
	}
	m.settings.Locked = !m.settings.Locked
	return m.settings.Locked, nil
}

// ChangeKey replaces the lock key after verifying the old one.
// When no key has been set yet, oldKey is not checked.
func (m *Manager) ChangeKey(oldKey, newKey string) error {
	if m.settings.KeyHash == "" {
		return m.setKey(newKey)
	}
	if err := m.checkKey(oldKey); err != nil {
		return err
	}
	return m.setKey(newKey)
}

// Theme returns the name of the selected theme.
func (m *Manager) Theme() string {
	return m.settings.Theme
}

// SetTheme records the selected theme.
func (m *Manager) SetTheme(name string) {
	m.settings.Theme = name
}

// History returns the inputs entered so far, oldest first.
func (m *Manager) History() []string {
	return append([]string(nil), m.history...)
}

// RecordInput appends input to the history.
func (m *Manager) RecordInput(input string) {
	m.history = append(m.history, input)
}

func (m *Manager) checkKey(key string) error {
	if m.settings.KeyHash == "" {
		return ErrNoKey
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.settings.KeyHash), []byte(key)); err != nil {
		return ErrWrongKey
	}
	return nil
}

func (m *Manager) setKey(key string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), m.keyCost)
	if err != nil {
		return fmt.Errorf("failed to hash key: %w", err)
	}
	m.settings.KeyHash = string(hash)
	return nil
}

func sortKey(field SortField) func(Person) string {
	switch field {
	case SortByPhone:
		return func(p Person) string { return p.Phone }
	case SortByEmail:
		return func(p Person) string { return p.Email }
	case SortByAddress:
		return func(p Person) string { return p.Address }
	default:
		return func(p Person) string { return p.Name }
	}
}
