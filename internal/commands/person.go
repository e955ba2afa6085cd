package commands

import (
	"errors"
	"fmt"
	"strings"

	"mtm/internal/model"
)

// Command words, aliases and usage for person commands.
const (
	AddWord  = "add"
	AddAlias = "a"
	AddUsage = AddWord + ": Adds a person to the address book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...\n" +
		"Example: " + AddWord + " n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 t/friends"

	EditWord  = "edit"
	EditAlias = "e"
	EditUsage = EditWord + ": Edits the details of the person identified by the index number used in the last person listing. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...\n" +
		"Example: " + EditWord + " 1 p/91234567 e/johndoe@example.com"

	DeleteWord  = "delete"
	DeleteAlias = "d"
	DeleteUsage = DeleteWord + ": Deletes the person identified by the index number used in the last person listing.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteWord + " 1"

	SelectWord  = "select"
	SelectAlias = "s"
	SelectUsage = SelectWord + ": Selects the person identified by the index number used in the last person listing.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + SelectWord + " 1"

	RemarkWord  = "remark"
	RemarkAlias = "rm"
	RemarkUsage = RemarkWord + ": Edits the remark of the person identified by the index number used in the last person listing. " +
		"An empty remark removes it.\n" +
		"Parameters: INDEX (must be a positive integer) r/[REMARK]\n" +
		"Example: " + RemarkWord + " 1 r/Likes to swim."

	PrivacyWord  = "privacy"
	PrivacyAlias = "tp"
	PrivacyUsage = PrivacyWord + ": Toggles whether the details of the person identified by the index number are hidden.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + PrivacyWord + " 1"
)

// AddCommand adds a person to the address book.
type AddCommand struct {
	Person model.Person
}

// Name returns the command word.
func (c AddCommand) Name() string { return AddWord }

// Execute adds the person under a new ID.
func (c AddCommand) Execute(m model.Model) (Result, error) {
	toAdd := c.Person.WithNewID()
	if err := m.AddPerson(toAdd); err != nil {
		if errors.Is(err, model.ErrDuplicatePerson) {
			return Result{}, errors.New(MessageDuplicatePerson)
		}
		return Result{}, err
	}
	m.Commit()
	return NewResult("New person added: %s", describe(toAdd)), nil
}

// EditPersonDescriptor holds the fields an edit replaces. Nil fields are kept.
type EditPersonDescriptor struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
	Tags    *[]string
}

// IsAnyFieldEdited reports whether the descriptor changes anything.
func (d EditPersonDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.Tags != nil
}

func (d EditPersonDescriptor) apply(p model.Person) model.Person {
	edited := p.Clone()
	if d.Name != nil {
		edited.Name = *d.Name
	}
	if d.Phone != nil {
		edited.Phone = *d.Phone
	}
	if d.Email != nil {
		edited.Email = *d.Email
	}
	if d.Address != nil {
		edited.Address = *d.Address
	}
	if d.Tags != nil {
		edited.Tags = append([]string(nil), (*d.Tags)...)
	}
	return edited
}

// EditCommand replaces fields of a displayed person.
type EditCommand struct {
	Index  int
	Fields EditPersonDescriptor
}

// Name returns the command word.
func (c EditCommand) Name() string { return EditWord }

// Execute edits the person at Index.
func (c EditCommand) Execute(m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := c.Fields.apply(target)
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, userError(err, "")
	}
	m.Commit()
	return NewResult("Edited Person: %s", describe(edited)), nil
}

// DeleteCommand removes a displayed person.
type DeleteCommand struct {
	Index int
}

// Name returns the command word.
func (c DeleteCommand) Name() string { return DeleteWord }

// Execute deletes the person at Index.
func (c DeleteCommand) Execute(m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeletePerson(target); err != nil {
		return Result{}, err
	}
	m.Commit()
	return NewResult("Deleted Person: %s", describe(target)), nil
}

// SelectCommand selects a displayed person.
type SelectCommand struct {
	Index int
}

// Name returns the command word.
func (c SelectCommand) Name() string { return SelectWord }

// Execute selects the person at Index.
func (c SelectCommand) Execute(m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	m.SelectPerson(target)
	res := NewResult("Selected Person: %d", c.Index)
	res.Selected = &target
	return res, nil
}

// RemarkCommand sets or clears the remark of a displayed person.
type RemarkCommand struct {
	Index  int
	Remark string
}

// Name returns the command word.
func (c RemarkCommand) Name() string { return RemarkWord }

// Execute updates the remark of the person at Index.
func (c RemarkCommand) Execute(m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := target.Clone()
	edited.Remark = c.Remark
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, err
	}
	m.Commit()
	if c.Remark == "" {
		return NewResult("Removed remark from Person: %s", edited.Name), nil
	}
	return NewResult("Added remark to Person: %s", edited.Name), nil
}

// PrivacyCommand toggles whether a person's details are hidden.
type PrivacyCommand struct {
	Index int
}

// Name returns the command word.
func (c PrivacyCommand) Name() string { return PrivacyWord }

// Execute flips the private flag of the person at Index.
func (c PrivacyCommand) Execute(m model.Model) (Result, error) {
	target, err := personAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := target.Clone()
	edited.Private = !target.Private
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, err
	}
	m.Commit()
	state := "public"
	if edited.Private {
		state = "private"
	}
	return NewResult("Details of %s are now %s", edited.Name, state), nil
}

// describe formats a person for feedback messages.
func describe(p model.Person) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Phone: %s Email: %s Address: %s", p.Name, p.Phone, p.Email, p.Address)
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, " Tags: %s", strings.Join(p.Tags, ", "))
	}
	return b.String()
}
