package ast

// This file implements the tree-model refinement helpers named by §4.K:
// retrospective reinterpretation of an already-parsed expression subtree as
// a destructuring pattern or a metadata attribute, without mutating the
// original nodes in place (§9 "Retrospective refinement").

// ToIdentifierName returns the plain name of e if e is a bare Identifier,
// and ok=false otherwise. Used where the grammar requires a simple name
// (e.g. a parameter, a catch binding) rather than a full pattern.
func ToIdentifierName(e Expression) (string, bool) {
	id, ok := e.(*Identifier)
	if !ok {
		return "", false
	}
	return id.Name, true
}

// ToIdentifierNameOrAsterisk returns the name for a bare Identifier, "*" for
// a QualifiedIdentifier asterisk wildcard, and ok=false otherwise.
func ToIdentifierNameOrAsterisk(e Expression) (string, bool) {
	if name, ok := ToIdentifierName(e); ok {
		return name, true
	}
	if qi, ok := e.(*QualifiedIdentifier); ok && qi.Asterisk && qi.Qualifier == nil {
		return "*", true
	}
	return "", false
}

// IsNonNullOperation reports whether e is a NonNullExpression, and returns
// its operand.
func IsNonNullOperation(e Expression) (Expression, bool) {
	nn, ok := e.(*NonNullExpression)
	if !ok {
		return nil, false
	}
	return nn.Operand, true
}

// ValidAccessModifier reports whether name is one of the four fixed access
// modifier spellings.
func ValidAccessModifier(name string) bool {
	switch name {
	case "public", "private", "protected", "internal":
		return true
	}
	return false
}

// IsValidDestructuring reports whether e may stand in for a destructuring
// pattern (§4.I): a simple identifier, an array literal whose elements are
// each themselves valid (eliding elements allowed, a rest element only as
// the last), an object initializer whose fields are each valid (shorthand
// allowed; non-shorthand values must themselves be valid), a default-valued
// assignment expression whose target is valid, or a non-null-postfixed
// valid pattern.
func IsValidDestructuring(e Expression) bool {
	switch n := e.(type) {
	case *Identifier:
		return true
	case *NonNullExpression:
		return IsValidDestructuring(n.Operand)
	case *AssignmentExpression:
		return n.Operator == "=" && IsValidDestructuring(n.Target)
	case *RestElement:
		return IsValidDestructuring(n.Target)
	case *ArrayLiteral:
		for i, el := range n.Elements {
			if el == nil {
				continue // elision
			}
			if _, isRest := el.(*RestElement); isRest && i != len(n.Elements)-1 {
				return false
			}
			if !IsValidDestructuring(el) {
				return false
			}
		}
		return true
	case *ObjectInitializer:
		for _, f := range n.Fields {
			if f.Shorthand {
				continue
			}
			if !IsValidDestructuring(f.Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// metadataShape reports whether e is either the `Identifier(...)`
// call-expression shape or a bare `Identifier` (entry-less metadata, e.g.
// `[Bindable]`) that to_metadata expects as the sole element of an array
// literal (§4.I "Metadata refinement"; §9 Scenario 5).
func metadataShape(e Expression) (name string, args []Expression, ok bool) {
	if id, ok := e.(*Identifier); ok {
		return id.Name, nil, true
	}
	call, ok := e.(*CallExpression)
	if !ok {
		return "", nil, false
	}
	id, ok := call.Callee.(*Identifier)
	if !ok {
		return "", nil, false
	}
	return id.Name, call.Arguments, true
}

// ToMetadata rewrites a metadata-shaped ArrayLiteral — one whose sole
// element is either a bare Identifier or an Identifier(...) call
// expression — into a MetadataAttribute. ok is false if lit does not
// conform to the expected shape.
func ToMetadata(lit *ArrayLiteral) (*MetadataAttribute, bool) {
	if len(lit.Elements) != 1 || lit.Elements[0] == nil {
		return nil, false
	}
	name, args, ok := metadataShape(lit.Elements[0])
	if !ok {
		return nil, false
	}
	var entries []*MetadataEntry
	for _, a := range args {
		switch v := a.(type) {
		case *AssignmentExpression:
			key, ok := ToIdentifierName(v.Target)
			if !ok {
				return nil, false
			}
			s, ok := v.Value.(*StringLiteral)
			if !ok {
				return nil, false
			}
			entries = append(entries, &MetadataEntry{BaseNode: BaseNode{v.Location()}, Key: key, Value: s.Value})
		case *StringLiteral:
			entries = append(entries, &MetadataEntry{BaseNode: BaseNode{v.Location()}, Value: v.Value})
		default:
			return nil, false
		}
	}
	return &MetadataAttribute{BaseNode: lit.BaseNode, Name: name, Entries: entries}, true
}
