// Package ast defines the AST node types produced by the parser: a
// discriminated union of Expression, Directive, and Attribute variants plus
// the structural records that hold them together (§4.K).
package ast

import "github.com/as3toolkit/as3parser/internal/source"

// Node is the base interface implemented by every tree variant.
type Node interface {
	Location() source.Location
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Directive is a statement or declaration appearing in a directive sequence.
type Directive interface {
	Node
	directiveNode()
}

// Attribute modifies a directive: an access modifier, a contextual modifier
// (final/native/static/override/dynamic), a namespace attribute, or a
// metadata attribute.
type Attribute interface {
	Node
	attributeNode()
}

// BaseNode supplies the common Location() accessor; every concrete node
// embeds it.
type BaseNode struct {
	Loc source.Location
}

func (b BaseNode) Location() source.Location { return b.Loc }

// Program is the root of a parsed compilation unit: a sequence of package
// definitions followed by top-level directives, or directly a directive
// sequence for a script without a package block.
type Program struct {
	BaseNode
	Packages   []*PackageDefinition
	Directives []Directive
}

// PackageDefinition is `package [name] { ... }`.
type PackageDefinition struct {
	BaseNode
	Name  string // empty for an unnamed package
	Block *Block
}

func (*PackageDefinition) directiveNode() {}

// Block is a brace-delimited directive sequence.
type Block struct {
	BaseNode
	Directives []Directive
}

func (*Block) directiveNode() {}

// ParameterKind orders a function's parameters: Required then Optional then
// Rest, non-decreasing (§3 structural invariant).
type ParameterKind int

const (
	ParameterRequired ParameterKind = 1 + iota
	ParameterOptional
	ParameterRest
)

// Parameter is one entry of a FunctionCommon's parameter list.
type Parameter struct {
	BaseNode
	Kind       ParameterKind
	Binding    *TypedDestructuring
	Default    Expression // non-nil only when Kind == ParameterOptional
}

// FunctionCommon is the shape shared by function declarations, function
// expressions, and getter/setter accessors: a parameter list, an optional
// result type annotation, and a body.
type FunctionCommon struct {
	BaseNode
	Params     []*Parameter
	ResultType Expression // nil if unannotated
	Body       Node       // *Block for a statement body, Expression for an arrow-function expression body
	UsesThis   bool
}

// TypedDestructuring pairs a destructuring pattern with an optional type
// annotation, used for variable bindings, parameters, and catch clauses.
type TypedDestructuring struct {
	BaseNode
	Pattern    Expression // Identifier, ArrayLiteral, or ObjectInitializer (refined)
	Type       Expression // nil if unannotated
	NonNull    bool       // trailing '!' on the pattern
}
