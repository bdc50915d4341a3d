package main

import (
	"fmt"
	"strings"
)

// Greeter backs the document's greeter.* bindings.
type Greeter struct{}

func (Greeter) Message() string {
	return "Hello from Go"
}

func (Greeter) Greet(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Hello, terminal!"
	}

	return fmt.Sprintf("Hello, %s!", name)
}
