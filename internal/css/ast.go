// Package css implements the parse_css facade entry point (§4.J, §6): a
// CSS-like dialect parser for the selector/declaration/at-rule blocks
// embedded in AS3 projects, built over github.com/gorilla/css/scanner
// rather than internal/lexer, since the CSS token grammar (hyphenated
// identifiers, unit-suffixed numbers, hash words) diverges from AS3's.
package css

import "github.com/as3toolkit/as3parser/internal/source"

// Node is implemented by every CSS AST variant (§4.K "Tree model
// contract").
type Node interface {
	Location() source.Location
}

// BaseNode carries the source span shared by every node.
type BaseNode struct {
	Loc source.Location
}

func (b BaseNode) Location() source.Location { return b.Loc }

// Document is the root of a parsed style sheet or style block: a sequence
// of rules and at-rules in source order.
type Document struct {
	BaseNode
	Rules []Rule
}

// Rule is implemented by StyleRule and AtRule.
type Rule interface {
	Node
	ruleNode()
}

// Selector is one comma-separated member of a StyleRule's selector group,
// kept as its raw source text (§4.J: selectors are assembled "at design
// level", not decomposed into combinators/specificity).
type Selector struct {
	BaseNode
	Text string
}

// StyleRule is `selector, selector { declaration; declaration }`.
type StyleRule struct {
	BaseNode
	Selectors    []*Selector
	Declarations []*Declaration
}

func (*StyleRule) ruleNode() {}

// AtRule is `@name prelude ;` or `@name prelude { ... }`. Exactly one of
// Block or Declarations is populated, depending on whether the body holds
// nested rules (e.g. `@media`) or a flat declaration list (e.g.
// `@font-face`); neither is populated for the semicolon-terminated form
// (e.g. `@namespace`).
type AtRule struct {
	BaseNode
	Name         string
	Prelude      string
	Block        []Rule
	Declarations []*Declaration
}

func (*AtRule) ruleNode() {}

// Declaration is `property: value` (with an optional `!important`),
// terminated by `;` or the end of its enclosing block.
type Declaration struct {
	BaseNode
	Property  string
	Value     string
	Important bool
}

// InvalidatedRule is the placeholder substituted wherever a rule
// production fails and local recovery proceeds (§7), mirroring
// ast.InvalidatedDirective.
type InvalidatedRule struct{ BaseNode }

func (*InvalidatedRule) ruleNode() {}

// NewInvalidatedRule builds an InvalidatedRule at loc.
func NewInvalidatedRule(loc source.Location) *InvalidatedRule {
	return &InvalidatedRule{BaseNode{loc}}
}
