package node

// Attribute is a name/value pair as delivered by the parser.
type Attribute struct {
	Name  QualName
	Value string
}

// NewAttribute creates an Attribute in no namespace.
func NewAttribute(local, value string) Attribute {
	return Attribute{Name: LocalName(local), Value: value}
}
