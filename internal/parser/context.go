package parser

import "github.com/as3toolkit/as3parser/internal/operator"

// ExpressionContext carries the precedence-climbing state named by §4.I:
// the minimum precedence level the next binary operator must meet, whether
// `in` may be treated as a relational operator (suppressed inside a
// for-statement's head), and whether conditional/assignment forms are
// permitted at this position.
type ExpressionContext struct {
	MinPrecedence   operator.Level
	AllowIn         bool
	AllowAssignment bool
}

// exprCtx builds the default top-level expression context: List precedence,
// `in` allowed, assignment/conditional allowed.
func exprCtx() ExpressionContext {
	return ExpressionContext{MinPrecedence: operator.List, AllowIn: true, AllowAssignment: true}
}

func (c ExpressionContext) withMin(level operator.Level) ExpressionContext {
	c.MinPrecedence = level
	return c
}

func (c ExpressionContext) withoutIn() ExpressionContext {
	c.AllowIn = false
	return c
}

func (c ExpressionContext) withoutAssignment() ExpressionContext {
	c.AllowAssignment = false
	return c
}

// DirectiveContextKind identifies the structural position a directive
// sequence is being parsed in (§4.I "Directive parsing").
type DirectiveContextKind int

const (
	TopLevel DirectiveContextKind = iota
	PackageBlock
	ClassBlock
	InterfaceBlock
	EnumBlock
	ConstructorBlock
)

// labelInfo is the {breakable, iteration} pair a label maps to (§4.I,
// "Labelled control flow" in §9): a label may wrap any directive, so
// `continue` additionally requires Iteration.
type labelInfo struct {
	Breakable bool
	Iteration bool
}

// DirectiveContext is threaded through directive parsing. Each nested
// control construct gets a child context from enterControl, which copies
// the enclosing labels map, so an inner loop's labels compose with (rather
// than replace) its enclosing ones.
type DirectiveContext struct {
	Kind DirectiveContextKind

	// ClassName is set for ClassBlock (needed to recognise the
	// constructor-name directive) and cleared otherwise.
	ClassName string

	// SuperCalled is copied into child contexts but never set by the
	// parser; whether a constructor calls super(...) is recorded on
	// ast.ConstructorDefinition.SuperCalled instead.
	SuperCalled bool

	// labels maps each enclosing labeled construct's label to its info.
	// pendingLabel holds a label staged by putLabel for the loop or switch
	// parsed next.
	labels       map[string]labelInfo
	pendingLabel string

	// breakable/iteration reflect the innermost *unlabeled* break/continue
	// target (a plain loop or switch), independent of the labels map.
	breakable bool
	iteration bool
}

func newDirectiveContext(kind DirectiveContextKind) *DirectiveContext {
	return &DirectiveContext{Kind: kind, labels: map[string]labelInfo{}}
}

// putLabel stages name as the label for the next directive to be parsed.
func (c *DirectiveContext) putLabel(name string) {
	c.pendingLabel = name
}

// takeLabel consumes and returns the pending label, if any.
func (c *DirectiveContext) takeLabel() (string, bool) {
	if c.pendingLabel == "" {
		return "", false
	}
	l := c.pendingLabel
	c.pendingLabel = ""
	return l, true
}

// enterControl returns a child context that records label as targeting a
// construct with the given breakable/iteration flags (if label is
// non-empty), and sets the innermost unlabeled target to the same flags.
// The parent's labels remain visible (labels may address any enclosing
// construct, not just the nearest one).
func (c *DirectiveContext) enterControl(label string, breakable, iteration bool) *DirectiveContext {
	child := &DirectiveContext{
		Kind:        c.Kind,
		ClassName:   c.ClassName,
		SuperCalled: c.SuperCalled,
		labels:      make(map[string]labelInfo, len(c.labels)+1),
		breakable:   breakable,
		iteration:   iteration,
	}
	for k, v := range c.labels {
		child.labels[k] = v
	}
	if label != "" {
		child.labels[label] = labelInfo{Breakable: breakable, Iteration: iteration}
	}
	return child
}

func (c *DirectiveContext) isBreakAllowed(label string) bool {
	if label == "" {
		return c.breakable
	}
	info, ok := c.labels[label]
	return ok && info.Breakable
}

func (c *DirectiveContext) isContinueAllowed(label string) bool {
	if label == "" {
		return c.iteration
	}
	info, ok := c.labels[label]
	return ok && info.Iteration
}

func (c *DirectiveContext) isLabelDefined(label string) bool {
	_, ok := c.labels[label]
	return ok
}
