package directions

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownFormatter = errors.New("unknown formatter")

var formatters = map[string]func(normalize bool) LineFormatter{
	"driving": func(n bool) LineFormatter { return DrivingFormatter{Normalize: n} },
	"walking": func(n bool) LineFormatter { return WalkingFormatter{Normalize: n} },
}

// FormatterByName returns the formatter registered under name (case-insensitive).
func FormatterByName(name string, normalize bool) (LineFormatter, error) {
	mk, ok := formatters[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("formatter %q (have %s): %w", name, strings.Join(FormatterNames(), ", "), ErrUnknownFormatter)
	}
	return mk(normalize), nil
}

func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for n := range formatters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
