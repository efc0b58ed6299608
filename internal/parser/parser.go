// Package parser implements the recursive-descent, operator-precedence
// parser described in §4.I: the facade entry points parse_program,
// parse_mxml, parse_expression, and parse_typed_destructuring, built over
// internal/lexer's context-sensitive tokenizer and internal/ast's tree
// model.
package parser

import (
	"github.com/as3toolkit/as3parser/internal/ast"
	"github.com/as3toolkit/as3parser/internal/diag"
	"github.com/as3toolkit/as3parser/internal/lexer"
	"github.com/as3toolkit/as3parser/internal/source"
	"github.com/as3toolkit/as3parser/internal/token"
)

// Options configures a parse (§6 "Parser options"): an optional byte range
// restricting parsing to a slice of the unit's text, whether to ignore
// ASDoc comments, and whether a lone `*` parses as the any-type expression.
type Options struct {
	RangeFirst, RangeLast int
	HasRange              bool
	IgnoreAsDoc           bool
	AllowAnyType          bool
}

// Parser holds the single mutable cursor over one CompilationUnit: the
// lexer and the current (Token, Location) pair; directive contexts are
// passed down as arguments, not held here. Mirroring §9 "Context-sensitive lexing", it never buffers more
// than one token of look-ahead across mode boundaries; deeper look-ahead is
// done by saving and restoring lexer state and re-scanning.
type Parser struct {
	unit *source.Unit
	opts Options
	lex  *lexer.Lexer

	tok token.Token
	loc source.Location

	// nextMode is set to Normal by New and not read afterwards; each
	// advance call passes the mode for its Scan explicitly.
	nextMode lexer.Mode

	prevEnd int // end offset of the token just consumed, used by finish
}

// New creates a Parser over unit with the given options and primes the
// first token.
func New(unit *source.Unit, opts Options) *Parser {
	start := 0
	if opts.HasRange {
		start = opts.RangeFirst
	}
	p := &Parser{unit: unit, opts: opts, lex: lexer.NewAt(unit, start), nextMode: lexer.Normal}
	p.advance(lexer.Normal)
	return p
}

// state is a restorable snapshot of the parser's cursor, for backtracking
// (e.g. speculative `not in`/`is not` lookahead, or metadata-shape
// retries).
type state struct {
	lexState lexer.State
	tok      token.Token
	loc      source.Location
	prevEnd  int
}

func (p *Parser) save() state {
	return state{lexState: p.lex.Save(), tok: p.tok, loc: p.loc, prevEnd: p.prevEnd}
}

func (p *Parser) restore(s state) {
	p.lex.Restore(s.lexState)
	p.tok = s.tok
	p.loc = s.loc
	p.prevEnd = s.prevEnd
}

// advance scans the next token under mode and makes it current.
func (p *Parser) advance(mode lexer.Mode) {
	if p.opts.HasRange && p.lex.Offset() >= p.opts.RangeLast {
		p.tok = token.Token{Kind: token.EOF}
		p.loc = source.NewCollapsedLocation(p.unit, p.opts.RangeLast)
		return
	}
	p.prevEnd = p.loc.Last
	p.tok, p.loc = p.lex.Scan(mode)
}

func (p *Parser) is(k token.Kind) bool { return p.tok.Kind == k }

func (p *Parser) isIdentifierText(text string) bool {
	return p.tok.Kind == token.Identifier && p.tok.Text == text
}

// mark starts a NodeBuilder-style span at the current token's first offset.
func (p *Parser) mark() int { return p.loc.First }

// finish builds the Location from first to the end of the token just
// consumed (p.prevEnd), mirroring the teacher's StartNode()/Finish() node
// builder but without reflection: callers set `Loc: p.finish(start)` on the
// literal node struct directly.
func (p *Parser) finish(first int) source.Location {
	last := p.prevEnd
	if last < first {
		last = first
	}
	return source.NewLocation(p.unit, first, last)
}

// expect reports Expected and returns false if the current token is not k;
// otherwise advances past it under mode and returns true.
func (p *Parser) expect(k token.Kind, mode lexer.Mode) bool {
	if !p.is(k) {
		p.report(p.loc, diag.Expected, diag.KindArg{Kind: k}, diag.TokenArg{Token: p.tok})
		return false
	}
	p.advance(mode)
	return true
}

// consume advances past the current token under mode and returns true if it
// is of kind k; otherwise leaves the cursor unchanged and returns false.
func (p *Parser) consume(k token.Kind, mode lexer.Mode) bool {
	if !p.is(k) {
		return false
	}
	p.advance(mode)
	return true
}

// consumeIdentifierText is the contextual-identifier counterpart of
// consume: it matches an Identifier token whose literal text equals text.
func (p *Parser) consumeIdentifierText(text string, mode lexer.Mode) bool {
	if !p.isIdentifierText(text) {
		return false
	}
	p.advance(mode)
	return true
}

// ParseProgram is the parse_program facade entry point (§4.I, §6).
func ParseProgram(unit *source.Unit, opts Options) *ast.Program {
	p := New(unit, opts)
	return p.parseProgram()
}

// ParseMxml is the parse_mxml facade entry point.
func ParseMxml(unit *source.Unit, opts Options) *ast.Mxml {
	p := New(unit, opts)
	return p.parseMxmlDocument()
}

// ParseExpression is the parse_expression facade entry point.
func ParseExpression(unit *source.Unit, opts Options, ctx ExpressionContext) ast.Expression {
	p := New(unit, opts)
	return p.parseExpression(ctx)
}

// ParseTypedDestructuring is the parse_typed_destructuring facade entry
// point.
func ParseTypedDestructuring(unit *source.Unit, opts Options) *ast.TypedDestructuring {
	p := New(unit, opts)
	return p.parseTypedDestructuring()
}

func (p *Parser) parseProgram() *ast.Program {
	first := p.mark()
	prog := &ast.Program{}

	for p.is(token.Package) {
		prog.Packages = append(prog.Packages, p.parsePackageDefinition())
	}

	ctx := newDirectiveContext(TopLevel)
	for !p.is(token.EOF) {
		d := p.parseDirective(ctx)
		if d != nil {
			prog.Directives = append(prog.Directives, d)
		}
	}

	prog.Loc = p.finish(first)
	return prog
}

func (p *Parser) parsePackageDefinition() *ast.PackageDefinition {
	first := p.mark()
	p.advance(lexer.Normal) // 'package'

	name := ""
	for p.is(token.Identifier) {
		name += p.tok.Text
		p.advance(lexer.Normal)
		if p.is(token.Dot) {
			name += "."
			p.advance(lexer.Normal)
			continue
		}
		break
	}

	block := p.parseBlock(newDirectiveContext(PackageBlock))
	return &ast.PackageDefinition{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Name: name, Block: block}
}

func (p *Parser) parseBlock(ctx *DirectiveContext) *ast.Block {
	first := p.mark()
	if !p.expect(token.LBrace, lexer.Normal) {
		return &ast.Block{BaseNode: ast.BaseNode{Loc: p.finish(first)}}
	}
	b := &ast.Block{}
	for !p.is(token.RBrace) && !p.is(token.EOF) {
		d := p.parseDirective(ctx)
		if d != nil {
			b.Directives = append(b.Directives, d)
		}
	}
	p.expect(token.RBrace, lexer.Normal)
	b.Loc = p.finish(first)
	return b
}
