package node

import (
	"iter"
	"slices"
	"strings"

	"github.com/lestrrat-go/forest/internal/orderedmap"
)

// Element is an element payload. Besides its attributes it carries two
// values derived from them: the id (the attribute whose local name is
// "id") and the class set (the whitespace separated tokens of the
// attribute whose local name is "class").
type Element struct {
	name    QualName
	attrs   *orderedmap.Map[QualName, string]
	id      string
	hasID   bool
	classes []string
}

var _ Node = (*Element)(nil)

// NewElement creates an Element with the given name and attributes.
// When attrs contains the same name more than once, the first value is
// kept.
func NewElement(name QualName, attrs []Attribute) *Element {
	e := &Element{
		name:  name,
		attrs: orderedmap.NewWithCapacity[QualName, string](len(attrs)),
	}
	for _, attr := range attrs {
		_ = e.attrs.Set(attr.Name, attr.Value)
	}
	e.derive()
	return e
}

func isLocal(local string) func(QualName) bool {
	return func(q QualName) bool {
		return q.Local == local
	}
}

func (e *Element) derive() {
	e.id, e.hasID = "", false
	if _, v, ok := e.attrs.Find(isLocal("id")); ok {
		e.id, e.hasID = v, true
	}

	e.classes = e.classes[:0]
	if _, v, ok := e.attrs.Find(isLocal("class")); ok {
		for _, c := range strings.Fields(v) {
			if !slices.Contains(e.classes, c) {
				e.classes = append(e.classes, c)
			}
		}
	}
}

func (*Element) Type() NodeType {
	return ElementNodeType
}

func (e *Element) LocalName() string {
	return e.name.Local
}

func (*Element) node() {}

// Name returns the qualified name of the element.
func (e *Element) Name() QualName {
	return e.name
}

// ID returns the value of the id attribute.
func (e *Element) ID() (string, bool) {
	return e.id, e.hasID
}

// Classes returns the distinct class names of the element, in the order
// of their first occurrence.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// Attribute returns the value of the attribute with the given name.
func (e *Element) Attribute(name QualName) (string, bool) {
	return e.attrs.Get(name)
}

// AttributeLen returns the number of attributes.
func (e *Element) AttributeLen() int {
	return e.attrs.Len()
}

// Attributes iterates over the attributes in the order in which they
// were first added.
func (e *Element) Attributes() iter.Seq2[QualName, string] {
	return e.attrs.Range()
}

// AddAttributeIfMissing adds attr unless an attribute with the same
// name already exists. It reports whether attr was added.
func (e *Element) AddAttributeIfMissing(attr Attribute) bool {
	if err := e.attrs.Set(attr.Name, attr.Value); err != nil {
		return false
	}
	if l := attr.Name.Local; l == "id" || l == "class" {
		e.derive()
	}
	return true
}
