package node

// Document is the payload of the root of a parsed document.
type Document struct{}

var _ Node = (*Document)(nil)

func NewDocument() *Document {
	return &Document{}
}

func (*Document) Type() NodeType {
	return DocumentNodeType
}

func (*Document) LocalName() string {
	return "#document"
}

func (*Document) node() {}

// Fragment is the payload of the root of a parsed fragment, and of the
// content container of a template element.
type Fragment struct{}

var _ Node = (*Fragment)(nil)

func NewFragment() *Fragment {
	return &Fragment{}
}

func (*Fragment) Type() NodeType {
	return FragmentNodeType
}

func (*Fragment) LocalName() string {
	return "#document-fragment"
}

func (*Fragment) node() {}
