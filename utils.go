package duml

import "strconv"

// stripQuotes removes a matching pair of double quotes that bound the
// whole value. Anything else, including an unmatched quote, passes
// through untouched.
func stripQuotes(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1]
	}

	return value
}

// intOr parses text as an integer, falling back when the whole text is
// not a number.
func intOr(text string, fallback int) int {
	if value, err := strconv.Atoi(text); err == nil {
		return value
	}

	return fallback
}
