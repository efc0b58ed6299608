package ast

import "github.com/as3toolkit/as3parser/internal/source"

// ExpressionStatement is a bare expression used as a directive.
type ExpressionStatement struct {
	BaseNode
	Expression Expression
}

func (*ExpressionStatement) directiveNode() {}

// EmptyStatement is a lone `;`.
type EmptyStatement struct{ BaseNode }

func (*EmptyStatement) directiveNode() {}

// VariableKind distinguishes `var` from `const`.
type VariableKind int

const (
	VarKind VariableKind = iota
	ConstKind
)

// VariableBinding is one `pattern[:type] [= init]` entry of a
// VariableDefinition.
type VariableBinding struct {
	BaseNode
	Destructuring *TypedDestructuring
	Initializer   Expression // nil if absent
}

// VariableDefinition is `var`/`const` followed by one or more bindings.
type VariableDefinition struct {
	BaseNode
	Attributes []Attribute
	Kind       VariableKind
	Bindings   []*VariableBinding
	AsDoc      *AsDoc
}

func (*VariableDefinition) directiveNode() {}

// FunctionDefinition is a named function declaration, including
// getter/setter accessors (AccessorKind != AccessorNone).
type AccessorKind int

const (
	AccessorNone AccessorKind = iota
	AccessorGet
	AccessorSet
)

type FunctionDefinition struct {
	BaseNode
	Attributes []Attribute
	Accessor   AccessorKind
	Name       string
	Common     *FunctionCommon
	AsDoc      *AsDoc
}

func (*FunctionDefinition) directiveNode() {}

// ConstructorDefinition is a class's `function ClassName(...) {...}`,
// tracked separately so the parser can observe whether a `super(...)` call
// appeared (§4.I).
type ConstructorDefinition struct {
	BaseNode
	Attributes  []Attribute
	Name        string
	Common      *FunctionCommon
	SuperCalled bool
}

func (*ConstructorDefinition) directiveNode() {}

// ClassDefinition is `class Name extends Base implements I1, I2 { ... }`.
type ClassDefinition struct {
	BaseNode
	Attributes []Attribute
	Name       string
	Extends    Expression // nil if absent
	Implements []Expression
	Block      *Block
	AsDoc      *AsDoc
}

func (*ClassDefinition) directiveNode() {}

// InterfaceDefinition is `interface Name extends I1, I2 { ... }`.
type InterfaceDefinition struct {
	BaseNode
	Attributes []Attribute
	Name       string
	Extends    []Expression
	Block      *Block
	AsDoc      *AsDoc
}

func (*InterfaceDefinition) directiveNode() {}

// EnumMember is one `Name[= init]` entry of an EnumDefinition.
type EnumMember struct {
	BaseNode
	Name        string
	Initializer Expression // nil if absent
}

// EnumDefinition is `enum Name { A, B = 1, ... }`.
type EnumDefinition struct {
	BaseNode
	Attributes []Attribute
	Name       string
	Members    []*EnumMember
}

func (*EnumDefinition) directiveNode() {}

// NamespaceDefinition is `namespace Name [= "uri"];`.
type NamespaceDefinition struct {
	BaseNode
	Attributes []Attribute
	Name       string
	URI        Expression // nil if absent
	AsDoc      *AsDoc
}

func (*NamespaceDefinition) directiveNode() {}

// UseNamespaceDirective is `use namespace Expr;`.
type UseNamespaceDirective struct {
	BaseNode
	Expression Expression
}

func (*UseNamespaceDirective) directiveNode() {}

// DefaultXMLNamespaceDirective is `default xml namespace = Expr;`; left
// unrestricted on the expression's shape at parse time (§9 open question).
type DefaultXMLNamespaceDirective struct {
	BaseNode
	Expression Expression
}

func (*DefaultXMLNamespaceDirective) directiveNode() {}

// ImportDirective is `import a.b.C;` or `import a.b.*;`.
type ImportDirective struct {
	BaseNode
	Path     string
	Wildcard bool
	Alias    string // never set: the parser reads no `import X = a.b.C;` form
}

func (*ImportDirective) directiveNode() {}

// IncludeDirective is `include "path";`. A successful include is replaced
// in the tree by a Block holding the included unit's directives (§4.I), so
// an IncludeDirective stays in a published tree only when the include
// failed (no file path, a cycle, or an unreadable file).
type IncludeDirective struct {
	BaseNode
	Path         string
	ResolvedPath string       // "" when the including unit has no file path
	Unit         *source.Unit // nil in every IncludeDirective left in a tree
}

func (*IncludeDirective) directiveNode() {}

// ConfigurationDirective is `CONFIG::NAME directive;` or `CONFIG::NAME { ... }`.
type ConfigurationDirective struct {
	BaseNode
	Namespace string
	Constant  string
	Body      Directive // a single Directive, or *Block for the brace form
}

func (*ConfigurationDirective) directiveNode() {}

// --- control flow ---

type IfStatement struct {
	BaseNode
	Test                  Expression
	Consequent, Alternate Directive // Alternate nil if absent
}

func (*IfStatement) directiveNode() {}

type WhileStatement struct {
	BaseNode
	Test Expression
	Body Directive
}

func (*WhileStatement) directiveNode() {}

type DoWhileStatement struct {
	BaseNode
	Body Directive
	Test Expression
}

func (*DoWhileStatement) directiveNode() {}

// ForStatement is the classic C-style `for (init; test; update)`.
type ForStatement struct {
	BaseNode
	Init   Node // nil, Expression, or *VariableDefinition
	Test   Expression
	Update Expression
	Body   Directive
}

func (*ForStatement) directiveNode() {}

// ForInStatement is `for (binding in expr)` or, when Each is set,
// `for each (binding in expr)`.
type ForInStatement struct {
	BaseNode
	Each    bool
	Left    Node // Expression, or *VariableDefinition with exactly one binding
	Right   Expression
	Body    Directive
}

func (*ForInStatement) directiveNode() {}

type SwitchCase struct {
	BaseNode
	Test       Expression // nil for `default:`
	Directives []Directive
}

type SwitchStatement struct {
	BaseNode
	Discriminant Expression
	Cases        []*SwitchCase
}

func (*SwitchStatement) directiveNode() {}

type BreakStatement struct {
	BaseNode
	Label string // empty if unlabeled
}

func (*BreakStatement) directiveNode() {}

type ContinueStatement struct {
	BaseNode
	Label string
}

func (*ContinueStatement) directiveNode() {}

type ReturnStatement struct {
	BaseNode
	Argument Expression // nil if absent
}

func (*ReturnStatement) directiveNode() {}

type ThrowStatement struct {
	BaseNode
	Argument Expression
}

func (*ThrowStatement) directiveNode() {}

type CatchClause struct {
	BaseNode
	Parameter *TypedDestructuring // nil for a parameterless catch
	Body      *Block
}

type TryStatement struct {
	BaseNode
	Block    *Block
	Catches  []*CatchClause
	Finally  *Block // nil if absent
}

func (*TryStatement) directiveNode() {}

// LabeledStatement is `Label: directive`; it may wrap any directive, not
// only loops/switches (§9).
type LabeledStatement struct {
	BaseNode
	Label string
	Body  Directive
}

func (*LabeledStatement) directiveNode() {}

// InvalidatedDirective is the placeholder substituted wherever a directive
// production fails and local recovery proceeds (§7).
type InvalidatedDirective struct{ BaseNode }

func (*InvalidatedDirective) directiveNode() {}

// NewInvalidatedDirective builds an InvalidatedDirective at loc.
func NewInvalidatedDirective(loc source.Location) *InvalidatedDirective {
	return &InvalidatedDirective{BaseNode{loc}}
}
