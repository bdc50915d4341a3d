package duml_test

import (
	"testing"

	"github.com/duml/go-duml"
)

const catalogSource = `
window-root {
    id: root
    title: "Catalog"

    layout-column {
        id: menu
        spacing: 1

        text { id: first; text: "One" }
        text { id: second; text: "Two" }

        layout-column {
            id: inner
            button { id: action; text: "Go" }
        }
    }
}

window-root {
    id: extra
}
`

func TestPropertyFallback(t *testing.T) {
	document := duml.ParseString(catalogSource)

	window := document.FirstOfKind("window-root")
	if window == nil {
		t.Fatal("Window not found")
	}

	if got := window.Property("title", "fallback"); got != "Catalog" {
		t.Errorf("Property returned %q, want %q", got, "Catalog")
	}

	if got := window.Property("missing", "fallback"); got != "fallback" {
		t.Errorf("Property returned %q, want fallback", got)
	}
}

func TestFirstOfKindChecksRootsFirst(t *testing.T) {
	document := duml.ParseString(catalogSource)

	window := document.FirstOfKind("window-root")
	if window == nil || window.ID != "root" {
		t.Fatalf("FirstOfKind returned %+v, want the first root", window)
	}

	column := document.FirstOfKind("layout-column")
	if column == nil || column.ID != "menu" {
		t.Errorf("FirstOfKind descended out of order, got %+v", column)
	}
}

func TestFindKindPreOrder(t *testing.T) {
	document := duml.ParseString(catalogSource)

	window := document.FirstOfKind("window-root")
	if window == nil {
		t.Fatal("Window not found")
	}

	text := window.FindKind("text")
	if text == nil || text.ID != "first" {
		t.Errorf("FindKind returned %+v, want the first text element", text)
	}

	if button := window.FindKind("button"); button == nil || button.ID != "action" {
		t.Errorf("FindKind did not reach nested elements, got %+v", button)
	}

	if missing := window.FindKind("text-field"); missing != nil {
		t.Errorf("FindKind returned %+v for an absent kind", missing)
	}
}

func TestFindID(t *testing.T) {
	document := duml.ParseString(catalogSource)

	for _, id := range []string{"root", "menu", "first", "second", "inner", "action", "extra"} {
		node := document.FindID(id)
		if node == nil {
			t.Errorf("FindID(%q) returned nil", id)
			continue
		}

		if node.ID != id {
			t.Errorf("FindID(%q) returned node with id %q", id, node.ID)
		}
	}

	if node := document.FindID("nowhere"); node != nil {
		t.Errorf("FindID returned %+v for an unknown id", node)
	}
}

// Children come back in the order they were declared.
func TestChildOrderPreserved(t *testing.T) {
	document := duml.ParseString(catalogSource)

	column := document.FirstOfKind("layout-column")
	if column == nil {
		t.Fatal("Column not found")
	}

	want := []string{"first", "second", "inner"}
	if len(column.Children) != len(want) {
		t.Fatalf("Column has %d children, want %d", len(column.Children), len(want))
	}

	for i, id := range want {
		if column.Children[i].ID != id {
			t.Errorf("Child #%d has id %q, want %q", i, column.Children[i].ID, id)
		}
	}
}
