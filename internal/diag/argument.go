package diag

import "github.com/as3toolkit/as3parser/internal/token"

// Argument is an ordered, typed value substituted into a diagnostic
// message template. §4.E requires at minimum string and token arguments.
type Argument interface {
	Render() string
}

// StringArg is a plain-text argument, e.g. an identifier name.
type StringArg string

func (a StringArg) Render() string { return string(a) }

// TokenArg renders through the token's canonical display form (§4.F).
type TokenArg struct{ Token token.Token }

func (a TokenArg) Render() string { return a.Token.DisplayName() }

// KindArg renders a bare token kind's display name without an associated
// literal, useful for "expected X" messages that only know the kind.
type KindArg struct{ Kind token.Kind }

func (a KindArg) Render() string {
	return token.Token{Kind: a.Kind}.DisplayName()
}
