// Package model holds the address book data and the state commands operate on.
// It contains persons, groups, the undo/redo history, the lock state and user settings.
package model

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Constraint messages shown when a field value is rejected.
const (
	MessageNameConstraints    = "Person names should only contain alphanumeric characters and spaces, and it should not be blank"
	MessagePhoneConstraints   = "Phone numbers can only contain numbers, and should be at least 3 digits long"
	MessageEmailConstraints   = "Person emails should be 2 alphanumeric/period strings separated by '@'"
	MessageAddressConstraints = "Person addresses can take any values, and it should not be blank"
	MessageTagConstraints     = "Tags names should be alphanumeric"
	MessageGroupConstraints   = "Group names should be alphanumeric and should not be blank"
)

var (
	nameRegex    = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phoneRegex   = regexp.MustCompile(`^\d{3,}$`)
	emailRegex   = regexp.MustCompile(`^[\w.+-]+@[\w-]+(\.[\w-]+)*$`)
	addressRegex = regexp.MustCompile(`^\S.*$`)
	tagRegex     = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
)

// IsValidName reports whether s is an acceptable person name.
func IsValidName(s string) bool { return nameRegex.MatchString(s) }

// IsValidPhone reports whether s is an acceptable phone number.
func IsValidPhone(s string) bool { return phoneRegex.MatchString(s) }

// IsValidEmail reports whether s is an acceptable email address.
func IsValidEmail(s string) bool { return emailRegex.MatchString(s) }

// IsValidAddress reports whether s is an acceptable address.
func IsValidAddress(s string) bool { return addressRegex.MatchString(s) }

// IsValidTag reports whether s is an acceptable tag name.
func IsValidTag(s string) bool { return tagRegex.MatchString(s) }

// IsValidGroupName reports whether s is an acceptable group name.
func IsValidGroupName(s string) bool { return tagRegex.MatchString(s) }

// Person is a contact in the address book.
type Person struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Phone   string   `yaml:"phone"`
	Email   string   `yaml:"email"`
	Address string   `yaml:"address"`
	Tags    []string `yaml:"tags,omitempty"`
	Remark  string   `yaml:"remark,omitempty"`
	Private bool     `yaml:"private,omitempty"`
}

// NewPerson creates a person with a fresh ID.
func NewPerson(name, phone, email, address string, tags []string) Person {
	return Person{
		ID:      uuid.NewString(),
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Tags:    normalizeTags(tags),
	}
}

// WithNewID returns a copy of p carrying a freshly generated ID.
func (p Person) WithNewID() Person {
	c := p.Clone()
	c.ID = uuid.NewString()
	return c
}

// IsSamePerson reports whether p and other identify the same contact.
// Names are compared case-insensitively.
func (p Person) IsSamePerson(other Person) bool {
	return strings.EqualFold(p.Name, other.Name)
}

// HasTag reports whether the person carries the given tag.
func (p Person) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of p.
func (p Person) Clone() Person {
	c := p
	if p.Tags != nil {
		c.Tags = append([]string(nil), p.Tags...)
	}
	return c
}

// normalizeTags removes duplicates while keeping the first occurrence order.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
