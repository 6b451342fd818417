package node

// Doctype is a document type declaration. Missing identifiers are
// empty strings.
type Doctype struct {
	name     string
	publicID string
	systemID string
}

var _ Node = (*Doctype)(nil)

func NewDoctype(name, publicID, systemID string) *Doctype {
	return &Doctype{
		name:     name,
		publicID: publicID,
		systemID: systemID,
	}
}

func (*Doctype) Type() NodeType {
	return DoctypeNodeType
}

func (d *Doctype) LocalName() string {
	return d.name
}

func (*Doctype) node() {}

func (d *Doctype) Name() string {
	return d.name
}

func (d *Doctype) PublicID() string {
	return d.publicID
}

func (d *Doctype) SystemID() string {
	return d.systemID
}
