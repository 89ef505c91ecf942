package validate

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Clean trims s and puts it in NFC so decomposed input from mobile keyboards
// compares equal to what is stored.
func Clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Required cleans s and rejects it when nothing is left.
func Required(name, s string) (string, error) {
	s = Clean(s)
	if s == "" {
		return "", errors.New(name + " is required")
	}
	return s, nil
}

// Optional cleans an optional field. Blank becomes nil.
func Optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := Clean(*s)
	if v == "" {
		return nil
	}
	return &v
}

// ParseLimitOffset applies defaults for absent values and rejects anything
// out of range instead of clamping it.
func ParseLimitOffset(limitRaw, offsetRaw string) (int, int, error) {
	limit := DefaultLimit
	if s := strings.TrimSpace(limitRaw); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > MaxLimit {
			return 0, 0, errors.New("limit must be an integer between 1 and " + strconv.Itoa(MaxLimit))
		}
		limit = v
	}
	offset := 0
	if s := strings.TrimSpace(offsetRaw); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return 0, 0, errors.New("offset must be a non-negative integer")
		}
		offset = v
	}
	return limit, offset, nil
}

// ParseID parses a positive integer path id.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}
