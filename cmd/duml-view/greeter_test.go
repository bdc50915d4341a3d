package main

import "testing"

func TestGreet(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output string
	}{
		{name: "name", input: "Ada", output: "Hello, Ada!"},
		{name: "padded name", input: "  Ada  ", output: "Hello, Ada!"},
		{name: "empty", input: "", output: "Hello, terminal!"},
		{name: "whitespace only", input: "   ", output: "Hello, terminal!"},
	}

	greeter := Greeter{}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := greeter.Greet(tc.input); got != tc.output {
				t.Errorf("Greet(%q) = %q, want %q", tc.input, got, tc.output)
			}
		})
	}
}

func TestResolveBinding(t *testing.T) {
	greeter := Greeter{}

	tt := []struct {
		name    string
		binding string
		output  string
	}{
		{name: "message", binding: "greeter.message", output: "Hello from Go"},
		{name: "greet", binding: "greeter.greet", output: "Hello, terminal!"},
		{name: "greet call", binding: "greeter.greet()", output: "Hello, terminal!"},
		{name: "unknown passes through", binding: "actionLabel", output: "actionLabel"},
		{name: "literal passes through", binding: "Quit", output: "Quit"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveBinding(greeter, tc.binding); got != tc.output {
				t.Errorf("resolveBinding(%q) = %q, want %q", tc.binding, got, tc.output)
			}
		})
	}
}
