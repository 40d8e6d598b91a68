package tally

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// KeyFunc derives a grouping key from a record. ok is false when the record
// has no key and should be dropped.
type KeyFunc func(record string) (key string, ok bool)

// ParseKeySpec parses one of:
//
//	line        the record itself
//	lower       the lower-cased record
//	len         the rune length of the record
//	field:N     the N-th whitespace separated field, 1-based
//	prefix:N    the first N runes
func ParseKeySpec(spec string) (KeyFunc, error) {
	name, arg, hasArg := strings.Cut(spec, ":")

	switch name {
	case "line", "lower", "len":
		if hasArg {
			return nil, &KeySpecError{Spec: spec, Pos: len(name), Message: "unexpected argument to " + name}
		}
	case "field", "prefix":
		if !hasArg {
			return nil, &KeySpecError{Spec: spec, Pos: len(spec), Message: name + " requires a count, e.g. " + name + ":1"}
		}
	case "":
		return nil, &KeySpecError{Spec: spec, Pos: 0, Message: "empty key spec"}
	default:
		return nil, &KeySpecError{Spec: spec, Pos: 0, Message: "unknown key " + strconv.Quote(name)}
	}

	switch name {
	case "line":
		return func(r string) (string, bool) { return r, true }, nil
	case "lower":
		return func(r string) (string, bool) { return strings.ToLower(r), true }, nil
	case "len":
		return func(r string) (string, bool) { return strconv.Itoa(utf8.RuneCountInString(r)), true }, nil
	}

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return nil, &KeySpecError{Spec: spec, Pos: len(name) + 1, Message: "count must be a positive integer"}
	}

	if name == "field" {
		return func(r string) (string, bool) {
			fields := strings.Fields(r)
			if len(fields) < n {
				return "", false
			}
			return fields[n-1], true
		}, nil
	}
	return func(r string) (string, bool) {
		if utf8.RuneCountInString(r) < n {
			return "", false
		}
		runes := []rune(r)
		return string(runes[:n]), true
	}, nil
}
