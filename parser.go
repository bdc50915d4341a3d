package duml

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a markup document line by line. The grammar is tolerant:
// lines that fit no rule are skipped, mismatched braces are absorbed,
// and the result is always a usable Document. The only possible error
// comes from the reader itself.
func Parse(r io.Reader) (*Document, error) {
	document := &Document{}

	var stack []*Node

	push := func(kind string) *Node {
		node := &Node{Kind: kind}
		if len(stack) == 0 {
			document.Roots = append(document.Roots, node)
		} else {
			top := stack[len(stack)-1]
			top.Children = append(top.Children, node)
		}

		stack = append(stack, node)
		return node
	}

	pop := func() {
		if len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}

		// opening line, possibly with inline properties and an inline close
		if brace := strings.Index(trimmed, "{"); brace != -1 {
			kind := strings.TrimSpace(trimmed[:brace])
			if kind == "" {
				continue
			}

			node := push(kind)

			remainder := strings.TrimSpace(trimmed[brace+1:])
			closes := false
			if strings.HasSuffix(remainder, "}") {
				closes = true
				remainder = strings.TrimSpace(remainder[:len(remainder)-1])
			}

			if remainder != "" {
				for key, value := range InlineProperties(remainder) {
					node.set(key, value)
				}
			}

			if closes {
				pop()
			}
			continue
		}

		if trimmed == "}" {
			pop()
			continue
		}

		colon := strings.Index(trimmed, ":")
		if colon == -1 || len(stack) == 0 {
			continue
		}

		key := strings.TrimSpace(trimmed[:colon])
		raw := strings.TrimSpace(trimmed[colon+1:])

		// a property line may double as the element's closing line
		closes := false
		if strings.HasSuffix(raw, "}") {
			closes = true
			raw = strings.TrimSpace(raw[:len(raw)-1])
		}

		stack[len(stack)-1].set(key, stripQuotes(raw))

		if closes {
			pop()
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return document, nil
}

// ParseString parses in-memory markup text. It never fails.
func ParseString(source string) *Document {
	document, _ := Parse(strings.NewReader(source))
	return document
}

// ParseFile parses the document at path. Unlike parsing itself, opening
// the file can fail, and that failure is returned rather than papered
// over with an empty document.
func ParseFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open document %q: %w", path, err)
	}

	defer file.Close()

	return Parse(file)
}
