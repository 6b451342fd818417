package node

type Comment struct {
	content []byte
}

var _ Node = (*Comment)(nil)

func NewComment(content []byte) *Comment {
	return &Comment{
		content: content,
	}
}

func (*Comment) Type() NodeType {
	return CommentNodeType
}

func (*Comment) LocalName() string {
	return "#comment"
}

func (*Comment) node() {}

func (n *Comment) Content(dst []byte) []byte {
	return append(dst, n.content...)
}

func (n *Comment) String() string {
	return string(n.content)
}
