package node

// Text represents a run of character data.
type Text struct {
	content []byte
}

var _ Node = (*Text)(nil)

func NewText(content []byte) *Text {
	return &Text{
		content: content,
	}
}

func (*Text) Type() NodeType {
	return TextNodeType
}

func (*Text) LocalName() string {
	return "#text"
}

func (*Text) node() {}

// Content appends the text to dst and returns the result.
func (n *Text) Content(dst []byte) []byte {
	return append(dst, n.content...)
}

// AddContent appends b to the end of the text.
func (n *Text) AddContent(b []byte) {
	n.content = append(n.content, b...)
}

func (n *Text) String() string {
	return string(n.content)
}
