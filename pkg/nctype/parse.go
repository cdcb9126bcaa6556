package nctype

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/nanohq/nano-engine/pkg/collection"
)

// ErrParse represents a type descriptor not matching any supported grammar
// production.
var ErrParse = errors.New("unable to parse type")

// Parse parses a type descriptor into its node tree. It is a pure function:
// deterministic and total over the supported grammar, with unbounded
// container nesting.
func Parse(typeStr string) (*Node, error) {
	s := strings.TrimSpace(typeStr)
	if collection.Contain(simpleTypeNames, s) {
		return &Node{Kind: KindSimple, Name: s}, nil
	}
	if strings.HasSuffix(s, "?") {
		inner, err := Parse(strings.TrimSuffix(s, "?"))
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindOptional, Inner: []*Node{inner}}, nil
	}

	open := strings.Index(s, "[")
	if open <= 0 || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("type %q: %w", typeStr, ErrParse)
	}
	name := s[:open]
	inner := s[open+1 : len(s)-1]

	if name == "SignedData" || name == "RawSignedData" {
		child, err := Parse(inner)
		if err != nil {
			return nil, err
		}
		kind := KindSignedData
		if name == "RawSignedData" {
			kind = KindRawSignedData
		}
		return &Node{Kind: kind, Name: strings.TrimSpace(inner), Inner: []*Node{child}}, nil
	}

	switch strings.ToLower(name) {
	case "optional":
		child, err := Parse(inner)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindOptional, Inner: []*Node{child}}, nil
	case "dict":
		parts := SplitTopLevel(inner)
		if len(parts) != 2 {
			return nil, fmt.Errorf("dict takes exactly two type arguments, type %q: %w", typeStr, ErrParse)
		}
		key, err := Parse(parts[0])
		if err != nil {
			return nil, err
		}
		value, err := Parse(parts[1])
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindDict, Inner: []*Node{key, value}}, nil
	case "tuple":
		parts := SplitTopLevel(inner)
		elements := make([]*Node, len(parts))
		for i, part := range parts {
			element, err := Parse(part)
			if err != nil {
				return nil, err
			}
			elements[i] = element
		}
		return &Node{Kind: KindTuple, Inner: elements}, nil
	case "list", "set", "deque", "frozenset":
		child, err := Parse(inner)
		if err != nil {
			return nil, err
		}
		kind := map[string]Kind{
			"list":      KindList,
			"set":       KindSet,
			"deque":     KindDeque,
			"frozenset": KindFrozenSet,
		}[strings.ToLower(name)]
		return &Node{Kind: kind, Inner: []*Node{child}}, nil
	}
	return nil, fmt.Errorf("type %q: %w", typeStr, ErrParse)
}

// SplitTopLevel splits s on commas at bracket depth zero, so commas inside
// nested "[...]" are not treated as separators. Depth only increases when
// "[" directly follows an identifier character or starts the string.
func SplitTopLevel(s string) []string {
	parts := []string{}
	depth := 0
	var cur strings.Builder
	var prev rune
	for i, r := range s {
		switch {
		case r == '[' && (i == 0 || isIdentRune(prev)):
			depth++
		case r == ']' && depth > 0:
			depth--
		case r == ',' && depth == 0:
			parts = append(parts, strings.TrimSpace(cur.String()))
			cur.Reset()
			prev = r
			continue
		}
		cur.WriteRune(r)
		prev = r
	}
	return append(parts, strings.TrimSpace(cur.String()))
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
