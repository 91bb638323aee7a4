package html

// NodeType distinguishes element nodes from text nodes.
type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Node is a single node in the document tree. Element nodes carry a tag name
// and attributes; text nodes carry the text content.
type Node struct {
	Type       NodeType
	TagName    string
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node
}

// Document is a parsed HTML document. Stylesheets holds the raw contents of
// every <style> element, in document order.
type Document struct {
	Root        *Node
	Stylesheets []string
}

// NewDocument returns an empty document with a synthetic root element.
func NewDocument() *Document {
	return &Document{
		Root: &Node{
			Type:     ElementNode,
			TagName:  "document",
			Children: make([]*Node, 0),
		},
		Stylesheets: make([]string, 0),
	}
}

// GetAttribute returns the value of the named attribute, if present.
func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

// AddChild adds a child node and sets up the parent relationship.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AppendText creates a text node and adds it as a child. Empty strings are
// ignored.
func (n *Node) AppendText(text string) {
	if text == "" {
		return
	}
	n.AddChild(&Node{Type: TextNode, Text: text})
}

// IsText reports whether the node is a text node.
func (n *Node) IsText() bool {
	return n.Type == TextNode
}
