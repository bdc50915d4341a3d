package duml

// Node is a single markup element: a kind tag, an optional id, a flat
// property map and ordered children. Properties stays nil until the
// first write.
type Node struct {
	Kind       string
	ID         string
	Properties map[string]string
	Children   []*Node
}

// Document is the ordered list of root elements produced by one parse.
type Document struct {
	Roots []*Node
}

// Property returns the value for key, or fallback if the key is absent.
func (n *Node) Property(key, fallback string) string {
	if v, ok := n.Properties[key]; ok {
		return v
	}
	return fallback
}

func (n *Node) set(key, value string) {
	if n.Properties == nil {
		n.Properties = map[string]string{}
	}
	n.Properties[key] = value
	if key == "id" {
		n.ID = value
	}
}

// FindKind returns the first descendant of the given kind in pre-order,
// or nil. The node itself is not considered.
func (n *Node) FindKind(kind string) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}

		if nested := child.FindKind(kind); nested != nil {
			return nested
		}
	}

	return nil
}

// FindID returns the first descendant with the given id in pre-order, or nil.
func (n *Node) FindID(id string) *Node {
	for _, child := range n.Children {
		if child.ID == id {
			return child
		}

		if nested := child.FindID(id); nested != nil {
			return nested
		}
	}

	return nil
}

// FirstOfKind returns the first node of the given kind in document order,
// checking each root itself before descending into its subtree.
func (d *Document) FirstOfKind(kind string) *Node {
	for _, root := range d.Roots {
		if root.Kind == kind {
			return root
		}

		if nested := root.FindKind(kind); nested != nil {
			return nested
		}
	}

	return nil
}

// FindID returns the first node with the given id in document order.
func (d *Document) FindID(id string) *Node {
	for _, root := range d.Roots {
		if root.ID == id {
			return root
		}

		if nested := root.FindID(id); nested != nil {
			return nested
		}
	}

	return nil
}
