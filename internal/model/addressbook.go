package model

import (
	"errors"
	"strings"
)

// Errors returned by address book operations.
var (
	ErrDuplicatePerson = errors.New("this person already exists in the address book")
	ErrPersonNotFound  = errors.New("the person could not be found")
	ErrDuplicateGroup  = errors.New("this group already exists in the address book")
	ErrGroupNotFound   = errors.New("the group could not be found")
)

// Group is a named set of persons, referenced by person ID.
type Group struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members,omitempty"`
}

// HasMember reports whether the person with the given ID belongs to the group.
func (g Group) HasMember(id string) bool {
	for _, m := range g.Members {
		if m == id {
			return true
		}
	}
	return false
}

// AddressBook holds all persons and groups.
type AddressBook struct {
	Persons []Person `yaml:"persons"`
	Groups  []Group  `yaml:"groups,omitempty"`
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{}
}

// Clone returns a deep copy of the address book.
func (ab *AddressBook) Clone() *AddressBook {
	c := &AddressBook{
		Persons: make([]Person, len(ab.Persons)),
		Groups:  make([]Group, len(ab.Groups)),
	}
	for i, p := range ab.Persons {
		c.Persons[i] = p.Clone()
	}
	for i, g := range ab.Groups {
		c.Groups[i] = Group{Name: g.Name, Members: append([]string(nil), g.Members...)}
	}
	return c
}

// HasPerson reports whether a person with the same identity exists.
func (ab *AddressBook) HasPerson(p Person) bool {
	for _, existing := range ab.Persons {
		if existing.IsSamePerson(p) {
			return true
		}
	}
	return false
}

// AddPerson appends p, rejecting duplicates.
func (ab *AddressBook) AddPerson(p Person) error {
	if ab.HasPerson(p) {
		return ErrDuplicatePerson
	}
	ab.Persons = append(ab.Persons, p)
	return nil
}

// SetPerson replaces the person with target's ID by edited.
func (ab *AddressBook) SetPerson(target, edited Person) error {
	idx := ab.indexOf(target.ID)
	if idx < 0 {
		return ErrPersonNotFound
	}
	for i, existing := range ab.Persons {
		if i != idx && existing.IsSamePerson(edited) {
			return ErrDuplicatePerson
		}
	}
	edited.ID = target.ID
	ab.Persons[idx] = edited
	return nil
}

// RemovePerson deletes the person and drops them from every group.
func (ab *AddressBook) RemovePerson(p Person) error {
	idx := ab.indexOf(p.ID)
	if idx < 0 {
		return ErrPersonNotFound
	}
	ab.Persons = append(ab.Persons[:idx], ab.Persons[idx+1:]...)
	for i := range ab.Groups {
		ab.Groups[i].Members = removeString(ab.Groups[i].Members, p.ID)
	}
	return nil
}

// PersonByID looks a person up by ID.
func (ab *AddressBook) PersonByID(id string) (Person, bool) {
	idx := ab.indexOf(id)
	if idx < 0 {
		return Person{}, false
	}
	return ab.Persons[idx], true
}

// Group returns the group with the given name. Group names compare case-insensitively.
func (ab *AddressBook) Group(name string) (Group, bool) {
	idx := ab.groupIndex(name)
	if idx < 0 {
		return Group{}, false
	}
	return ab.Groups[idx], true
}

// AddGroup creates an empty group.
func (ab *AddressBook) AddGroup(name string) error {
	if ab.groupIndex(name) >= 0 {
		return ErrDuplicateGroup
	}
	ab.Groups = append(ab.Groups, Group{Name: name})
	return nil
}

// RemoveGroup deletes a group. Its members stay in the address book.
func (ab *AddressBook) RemoveGroup(name string) error {
	idx := ab.groupIndex(name)
	if idx < 0 {
		return ErrGroupNotFound
	}
	ab.Groups = append(ab.Groups[:idx], ab.Groups[idx+1:]...)
	return nil
}

// RenameGroup changes a group's name.
func (ab *AddressBook) RenameGroup(oldName, newName string) error {
	idx := ab.groupIndex(oldName)
	if idx < 0 {
		return ErrGroupNotFound
	}
	if other := ab.groupIndex(newName); other >= 0 && other != idx {
		return ErrDuplicateGroup
	}
	ab.Groups[idx].Name = newName
	return nil
}

// AssignToGroup adds the given person IDs to a group, skipping existing members.
// It returns the number of persons newly added.
func (ab *AddressBook) AssignToGroup(name string, ids []string) (int, error) {
	idx := ab.groupIndex(name)
	if idx < 0 {
		return 0, ErrGroupNotFound
	}
	added := 0
	for _, id := range ids {
		if ab.indexOf(id) < 0 {
			return added, ErrPersonNotFound
		}
		if ab.Groups[idx].HasMember(id) {
			continue
		}
		ab.Groups[idx].Members = append(ab.Groups[idx].Members, id)
		added++
	}
	return added, nil
}

// Members returns the persons of a group in address book order.
func (ab *AddressBook) Members(name string) ([]Person, error) {
	g, ok := ab.Group(name)
	if !ok {
		return nil, ErrGroupNotFound
	}
	var members []Person
	for _, p := range ab.Persons {
		if g.HasMember(p.ID) {
			members = append(members, p)
		}
	}
	return members, nil
}

func (ab *AddressBook) indexOf(id string) int {
	for i, p := range ab.Persons {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (ab *AddressBook) groupIndex(name string) int {
	for i, g := range ab.Groups {
		if strings.EqualFold(g.Name, name) {
			return i
		}
	}
	return -1
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
