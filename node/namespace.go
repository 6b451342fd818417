package node

const (
	HTMLNamespace   = "http://www.w3.org/1999/xhtml"
	MathMLNamespace = "http://www.w3.org/1998/Math/MathML"
	SVGNamespace    = "http://www.w3.org/2000/svg"
	XLinkNamespace  = "http://www.w3.org/1999/xlink"
	XMLNamespace    = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace  = "http://www.w3.org/2000/xmlns/"
)

// QualName is a namespace-qualified name. Space holds the namespace URI,
// which is empty for names in no namespace.
type QualName struct {
	Prefix string
	Space  string
	Local  string
}

// HTMLName returns the name of the element local in the HTML namespace.
func HTMLName(local string) QualName {
	return QualName{Space: HTMLNamespace, Local: local}
}

// LocalName returns a name in no namespace, the usual case for
// attributes.
func LocalName(local string) QualName {
	return QualName{Local: local}
}

// Is reports whether q has the given namespace and local name. The
// prefix is not compared.
func (q QualName) Is(space, local string) bool {
	return q.Space == space && q.Local == local
}

// String returns the name as written in markup, "prefix:local" or
// "local".
func (q QualName) String() string {
	if q.Prefix == "" {
		return q.Local
	}
	return q.Prefix + ":" + q.Local
}
