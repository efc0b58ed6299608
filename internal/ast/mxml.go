package ast

// Mxml is the root of a parsed MXML document: a single root element
// (§4.J). Namespace prefixes are resolved into each element's MxmlName;
// the prefix→uri mapping itself is not stored.
type Mxml struct {
	BaseNode
	Root *MxmlElement
}

func (*Mxml) directiveNode() {} // an Mxml may also terminate a Program-like parse; treated as a directive-compatible root for facade uniformity.

// MxmlName is a resolved (uri, localname) pair (§4.J "Name resolution").
type MxmlName struct {
	URI       string
	LocalName string
	Prefix    string // as written; "" for the default namespace
}

// MxmlAttribute is one `name="value"` or `xmlns[:prefix]="uri"` entry.
type MxmlAttribute struct {
	BaseNode
	Name  MxmlName
	Value string
}

// MxmlElement is a single tag and its content. Its Name is resolved against
// the prefix→uri mapping in effect at this element (inherited from its
// parent and extended by its own xmlns attributes); the mapping itself is
// not stored on the node.
type MxmlElement struct {
	BaseNode
	Name       MxmlName
	Attributes []*MxmlAttribute
	Content    []MxmlContent
	SelfClosed bool
}

// MxmlContent is one child of an element's content sequence: text, CDATA,
// a comment, a processing instruction, an embedded `{...}` expression, or a
// nested element. Exactly one of the typed fields is populated per entry.
type MxmlContent struct {
	BaseNode
	Text        string       // plain character data
	IsCDATA     bool
	IsComment   bool
	IsPI        bool
	PITarget    string       // processing-instruction target, when IsPI
	Expression  Expression   // non-nil for an embedded `{...}` interpolation
	Element     *MxmlElement // non-nil for a nested element
}
