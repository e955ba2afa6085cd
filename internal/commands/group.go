package commands

import (
	"errors"

	"mtm/internal/model"
)

// Command words, aliases and usage for group commands.
const (
	CreateWord  = "create"
	CreateAlias = "cr"
	CreateUsage = CreateWord + ": Creates a new, empty group.\n" +
		"Parameters: GROUP_NAME (alphanumeric)\n" +
		"Example: " + CreateWord + " colleagues"

	RemoveWord  = "remove"
	RemoveAlias = "rmv"
	RemoveUsage = RemoveWord + ": Removes a group. Its members stay in the address book.\n" +
		"Parameters: GROUP_NAME\n" +
		"Example: " + RemoveWord + " colleagues"

	AssignWord  = "assign"
	AssignAlias = "as"
	AssignUsage = AssignWord + ": Assigns the persons identified by the index numbers used in the last person listing to a group.\n" +
		"Parameters: GROUP_NAME INDEX [MORE_INDEXES]...\n" +
		"Example: " + AssignWord + " colleagues 1 3"

	RenameWord  = "rename"
	RenameAlias = "rn"
	RenameUsage = RenameWord + ": Renames a group.\n" +
		"Parameters: OLD_GROUP_NAME NEW_GROUP_NAME\n" +
		"Example: " + RenameWord + " colleagues coworkers"

	ViewWord  = "view"
	ViewAlias = "v"
	ViewUsage = ViewWord + ": Lists the members of a group.\n" +
		"Parameters: GROUP_NAME\n" +
		"Example: " + ViewWord + " colleagues"
)

// CreateCommand creates an empty group.
type CreateCommand struct {
	Group string
}

// Name returns the command word.
func (c CreateCommand) Name() string { return CreateWord }

// Execute creates the group.
func (c CreateCommand) Execute(m model.Model) (Result, error) {
	if err := m.CreateGroup(c.Group); err != nil {
		return Result{}, userError(err, c.Group)
	}
	m.Commit()
	return NewResult("New group created: %s", c.Group), nil
}

// RemoveCommand deletes a group.
type RemoveCommand struct {
	Group string
}

// Name returns the command word.
func (c RemoveCommand) Name() string { return RemoveWord }

// Execute removes the group.
func (c RemoveCommand) Execute(m model.Model) (Result, error) {
	if err := m.RemoveGroup(c.Group); err != nil {
		return Result{}, userError(err, c.Group)
	}
	m.Commit()
	return NewResult("Group removed: %s", c.Group), nil
}

// AssignCommand adds displayed persons to a group.
type AssignCommand struct {
	Group   string
	Indexes []int
}

// Name returns the command word.
func (c AssignCommand) Name() string { return AssignWord }

// Execute assigns the persons at Indexes to Group.
func (c AssignCommand) Execute(m model.Model) (Result, error) {
	persons := make([]model.Person, 0, len(c.Indexes))
	for _, idx := range c.Indexes {
		p, err := personAt(m, idx)
		if err != nil {
			return Result{}, err
		}
		persons = append(persons, p)
	}
	added, err := m.AssignToGroup(c.Group, persons)
	if err != nil {
		return Result{}, userError(err, c.Group)
	}
	m.Commit()
	return NewResult("%d person(s) assigned to group %s", added, c.Group), nil
}

// RenameCommand renames a group.
type RenameCommand struct {
	From string
	To   string
}

// Name returns the command word.
func (c RenameCommand) Name() string { return RenameWord }

// Execute renames the group.
func (c RenameCommand) Execute(m model.Model) (Result, error) {
	if err := m.RenameGroup(c.From, c.To); err != nil {
		name := c.From
		if errors.Is(err, model.ErrDuplicateGroup) {
			name = c.To
		}
		return Result{}, userError(err, name)
	}
	m.Commit()
	return NewResult("Group %s renamed to %s", c.From, c.To), nil
}

// ViewCommand shows only the members of a group.
type ViewCommand struct {
	Group string
}

// Name returns the command word.
func (c ViewCommand) Name() string { return ViewWord }

// Execute filters the displayed list to the group's members.
func (c ViewCommand) Execute(m model.Model) (Result, error) {
	members, err := m.GroupMembers(c.Group)
	if err != nil {
		return Result{}, userError(err, c.Group)
	}
	ids := make(map[string]bool, len(members))
	for _, p := range members {
		ids[p.ID] = true
	}
	m.UpdateFilter(func(p model.Person) bool { return ids[p.ID] })
	res := NewResult("Listed %d persons in group %s", len(members), c.Group)
	res.ShowList = true
	return res, nil
}
