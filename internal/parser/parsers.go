package parser

import (
	"fmt"
	"strings"

	"mtm/internal/commands"
	"mtm/internal/model"
)

// MessageNotEdited is shown when an edit names no field.
const MessageNotEdited = "At least one field to edit must be provided."

// noArgs wraps a constructor for a command that takes no arguments.
// The argument tail is ignored.
func noArgs(build func() commands.Command) ParseFunc {
	return func(string) (commands.Command, error) {
		return build(), nil
	}
}

// indexOnly builds a parser for commands whose only argument is an index.
func indexOnly(usage string, build func(int) commands.Command) ParseFunc {
	return func(args string) (commands.Command, error) {
		index, err := ParseIndex(args)
		if err != nil {
			return nil, invalidFormat(usage)
		}
		return build(index), nil
	}
}

// singleGroup builds a parser for commands whose only argument is a group name.
func singleGroup(usage string, build func(string) commands.Command) ParseFunc {
	return func(args string) (commands.Command, error) {
		trimmed := strings.TrimSpace(args)
		if trimmed == "" {
			return nil, invalidFormat(usage)
		}
		name, err := ParseGroupName(trimmed)
		if err != nil {
			return nil, err
		}
		return build(name), nil
	}
}

func parseAdd(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	if m.Preamble() != "" || !m.Has(PrefixName) || !m.Has(PrefixPhone) || !m.Has(PrefixEmail) || !m.Has(PrefixAddress) {
		return nil, invalidFormat(commands.AddUsage)
	}

	rawName, _ := m.Value(PrefixName)
	name, err := ParseName(rawName)
	if err != nil {
		return nil, err
	}
	rawPhone, _ := m.Value(PrefixPhone)
	phone, err := ParsePhone(rawPhone)
	if err != nil {
		return nil, err
	}
	rawEmail, _ := m.Value(PrefixEmail)
	email, err := ParseEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	rawAddress, _ := m.Value(PrefixAddress)
	address, err := ParseAddress(rawAddress)
	if err != nil {
		return nil, err
	}
	tags, err := ParseTags(m.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}

	return commands.AddCommand{Person: model.Person{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Tags:    tags,
	}}, nil
}

func parseEdit(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormat(commands.EditUsage)
	}

	var fields commands.EditPersonDescriptor
	if v, ok := m.Value(PrefixName); ok {
		name, err := ParseName(v)
		if err != nil {
			return nil, err
		}
		fields.Name = &name
	}
	if v, ok := m.Value(PrefixPhone); ok {
		phone, err := ParsePhone(v)
		if err != nil {
			return nil, err
		}
		fields.Phone = &phone
	}
	if v, ok := m.Value(PrefixEmail); ok {
		email, err := ParseEmail(v)
		if err != nil {
			return nil, err
		}
		fields.Email = &email
	}
	if v, ok := m.Value(PrefixAddress); ok {
		address, err := ParseAddress(v)
		if err != nil {
			return nil, err
		}
		fields.Address = &address
	}
	if m.Has(PrefixTag) {
		tags, err := parseTagsForEdit(m.AllValues(PrefixTag))
		if err != nil {
			return nil, err
		}
		fields.Tags = &tags
	}

	if !fields.IsAnyFieldEdited() {
		return nil, invalidValue(MessageNotEdited)
	}
	return commands.EditCommand{Index: index, Fields: fields}, nil
}

// parseTagsForEdit treats a single empty "t/" as a request to clear all tags.
func parseTagsForEdit(values []string) ([]string, error) {
	if len(values) == 1 && values[0] == "" {
		return []string{}, nil
	}
	tags, err := ParseTags(values)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func parseRemark(args string) (commands.Command, error) {
	m := Tokenize(args, PrefixRemark)
	if !m.Has(PrefixRemark) {
		return nil, invalidFormat(commands.RemarkUsage)
	}
	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormat(commands.RemarkUsage)
	}
	remark, _ := m.Value(PrefixRemark)
	return commands.RemarkCommand{Index: index, Remark: remark}, nil
}

func parseFind(args string) (commands.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(commands.FindUsage)
	}
	return commands.FindCommand{Keywords: keywords}, nil
}

func parseSort(args string) (commands.Command, error) {
	field, ok := model.ParseSortField(strings.TrimSpace(args))
	if !ok {
		return nil, invalidFormat(commands.SortUsage)
	}
	return commands.SortCommand{Field: field}, nil
}

func parseTheme(args string) (commands.Command, error) {
	theme := strings.TrimSpace(args)
	if theme == "" {
		return nil, invalidFormat(commands.ThemeUsage)
	}
	for _, name := range commands.ThemeNames {
		if strings.EqualFold(theme, name) {
			return commands.ThemeCommand{Theme: name}, nil
		}
	}
	return nil, invalidValue(fmt.Sprintf("Theme %s does not exist. Available themes: %s",
		theme, strings.Join(commands.ThemeNames, ", ")))
}

func parseKey(args string) (commands.Command, error) {
	key := strings.TrimSpace(args)
	if key == "" {
		return nil, invalidFormat(commands.KeyUsage)
	}
	return commands.KeyCommand{Key: key}, nil
}

func parseSet(args string) (commands.Command, error) {
	keys := strings.Fields(args)
	if len(keys) != 2 {
		return nil, invalidFormat(commands.SetUsage)
	}
	return commands.SetCommand{OldKey: keys[0], NewKey: keys[1]}, nil
}

func parseAssign(args string) (commands.Command, error) {
	parts := strings.Fields(args)
	if len(parts) < 2 {
		return nil, invalidFormat(commands.AssignUsage)
	}
	group, err := ParseGroupName(parts[0])
	if err != nil {
		return nil, err
	}
	indexes := make([]int, 0, len(parts)-1)
	for _, p := range parts[1:] {
		index, err := ParseIndex(p)
		if err != nil {
			return nil, invalidFormat(commands.AssignUsage)
		}
		indexes = append(indexes, index)
	}
	return commands.AssignCommand{Group: group, Indexes: indexes}, nil
}

func parseRename(args string) (commands.Command, error) {
	parts := strings.Fields(args)
	if len(parts) != 2 {
		return nil, invalidFormat(commands.RenameUsage)
	}
	from, err := ParseGroupName(parts[0])
	if err != nil {
		return nil, err
	}
	to, err := ParseGroupName(parts[1])
	if err != nil {
		return nil, err
	}
	return commands.RenameCommand{From: from, To: to}, nil
}
