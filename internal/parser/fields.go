package parser

import (
	"strconv"
	"strings"

	"mtm/internal/model"
)

// MessageInvalidIndex is shown when an index is not a positive integer.
const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// ParseIndex parses a 1-based index. Leading and trailing whitespace is ignored.
func ParseIndex(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.HasPrefix(trimmed, "+") {
		return 0, invalidValue(MessageInvalidIndex)
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 {
		return 0, invalidValue(MessageInvalidIndex)
	}
	return n, nil
}

// ParseName validates a person name.
func ParseName(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if !model.IsValidName(trimmed) {
		return "", invalidValue(model.MessageNameConstraints)
	}
	return trimmed, nil
}

// ParsePhone validates a phone number.
func ParsePhone(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if !model.IsValidPhone(trimmed) {
		return "", invalidValue(model.MessagePhoneConstraints)
	}
	return trimmed, nil
}

// ParseEmail validates an email address.
func ParseEmail(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if !model.IsValidEmail(trimmed) {
		return "", invalidValue(model.MessageEmailConstraints)
	}
	return trimmed, nil
}

// ParseAddress validates an address.
func ParseAddress(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if !model.IsValidAddress(trimmed) {
		return "", invalidValue(model.MessageAddressConstraints)
	}
	return trimmed, nil
}

// ParseTags validates every tag and drops duplicates.
func ParseTags(values []string) ([]string, error) {
	var tags []string
	seen := make(map[string]bool)
	for _, v := range values {
		tag := strings.TrimSpace(v)
		if !model.IsValidTag(tag) {
			return nil, invalidValue(model.MessageTagConstraints)
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags, nil
}

// ParseGroupName validates a group name.
func ParseGroupName(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if !model.IsValidGroupName(trimmed) {
		return "", invalidValue(model.MessageGroupConstraints)
	}
	return trimmed, nil
}
