package duml

import "strings"

// InlineProperties parses a semicolon separated property list in this
// format: key: value; key: value, as used after an opening brace on a
// single-line element declaration. Segments without a colon are skipped,
// later duplicates overwrite earlier ones.
func InlineProperties(raw string) map[string]string {
	kv := map[string]string{}

	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		colon := strings.Index(part, ":")
		if colon == -1 {
			continue
		}

		key := strings.TrimSpace(part[:colon])
		value := stripQuotes(strings.TrimSpace(part[colon+1:]))

		kv[key] = value
	}

	return kv
}
