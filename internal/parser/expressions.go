package parser

import (
	"github.com/as3toolkit/as3parser/internal/ast"
	"github.com/as3toolkit/as3parser/internal/diag"
	"github.com/as3toolkit/as3parser/internal/lexer"
	"github.com/as3toolkit/as3parser/internal/operator"
	"github.com/as3toolkit/as3parser/internal/token"
)

// parseExpression is the top-level expression entry point: a conditional/
// assignment expression, optionally followed by a comma-joined sequence
// when the context's minimum precedence is List (§3 "SequenceExpression").
func (p *Parser) parseExpression(ctx ExpressionContext) ast.Expression {
	first := p.mark()
	e := p.parseAssignment(ctx)
	if ctx.MinPrecedence != operator.List || !p.is(token.Comma) {
		return e
	}
	seq := &ast.SequenceExpression{Expressions: []ast.Expression{e}}
	for p.consume(token.Comma, lexer.Normal) {
		seq.Expressions = append(seq.Expressions, p.parseAssignment(ctx))
	}
	seq.Loc = p.finish(first)
	return seq
}

// parseAssignment parses a conditional expression and, when allowed by ctx,
// an assignment or compound-assignment suffix.
func (p *Parser) parseAssignment(ctx ExpressionContext) ast.Expression {
	if arrow, ok := p.tryParseArrowFunction(ctx); ok {
		return arrow
	}

	first := p.mark()
	left := p.parseConditional(ctx)

	if !ctx.AllowAssignment {
		return left
	}

	if p.is(token.Assign) {
		p.advance(lexer.RegexPermitted)
		value := p.parseAssignment(ctx)
		return &ast.AssignmentExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Operator: "=", Target: left, Value: value}
	}
	if _, ok := operator.CompoundAssignment(p.tok.Kind); ok {
		opText := p.tok.Text
		p.advance(lexer.RegexPermitted)
		value := p.parseAssignment(ctx)
		return &ast.AssignmentExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Operator: opText, Target: left, Value: value}
	}
	return left
}

// parseConditional parses `test ? consequent : alternate`, or falls
// through to binary climbing when no `?` follows.
func (p *Parser) parseConditional(ctx ExpressionContext) ast.Expression {
	first := p.mark()
	test := p.parseBinary(ctx)
	if !ctx.AllowAssignment || !p.is(token.Question) {
		return test
	}
	p.advance(lexer.RegexPermitted)
	consequent := p.parseAssignment(ctx.withMin(operator.AssignmentAndOther))
	if !p.expect(token.Colon, lexer.RegexPermitted) {
		return &ast.ConditionalExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Test: test, Consequent: consequent, Alternate: ast.NewInvalidatedExpression(p.loc)}
	}
	alternate := p.parseAssignment(ctx)
	return &ast.ConditionalExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Test: test, Consequent: consequent, Alternate: alternate}
}

// tryRelationalContextual recognises the two-token "not in" / "is not"
// forms (§4.H, §9): look ahead past the contextual "not" identifier for a
// following "in"/"is" keyword, committing both tokens only on a match.
func (p *Parser) tryRelationalContextual() (operator.Operator, bool) {
	if p.isIdentifierText(token.ContextualNot) {
		s := p.save()
		p.advance(lexer.Normal)
		if p.is(token.In) {
			p.advance(lexer.RegexPermitted)
			return operator.NotIn, true
		}
		p.restore(s)
		return 0, false
	}
	if p.is(token.Is) {
		s := p.save()
		p.advance(lexer.Normal)
		if p.isIdentifierText(token.ContextualNot) {
			p.advance(lexer.RegexPermitted)
			return operator.IsNot, true
		}
		p.restore(s)
		return 0, false
	}
	return 0, false
}

func isLogicalOrAnd(op operator.Operator) bool {
	return op == operator.LogicalOr || op == operator.LogicalAnd
}

// parseBinary implements precedence climbing over the level lattice of
// §4.H, folding left-to-right except for the right-associative Power
// operator, and enforcing the nullish-coalescing left-operand restriction:
// `a ?? b || c` is rejected unless `b || c` is parenthesised.
func (p *Parser) parseBinary(ctx ExpressionContext) ast.Expression {
	left := p.parseUnary(ctx)

	for {
		first := left.Location().First

		var op operator.Operator
		var ok, consumed bool
		var opText string

		if ctx.MinPrecedence <= operator.RelationalLevel {
			if op, ok = p.tryRelationalContextual(); ok {
				opText = op.String()
				consumed = true
			}
		}
		if !ok {
			if p.is(token.In) && !ctx.AllowIn {
				break
			}
			op, ok = operator.ToBinaryOperator(p.tok.Kind)
			if ok {
				opText = p.tok.Text
			}
		}
		if !ok || op.Level() < ctx.MinPrecedence {
			break
		}

		if !consumed {
			p.advance(lexer.RegexPermitted)
		}

		right := p.parseBinary(ctx.withMin(op.RightLevel()))

		if prevBin, isBin := left.(*ast.BinaryExpression); isBin {
			if (prevBin.Operator == "??" && isLogicalOrAndText(opText)) || (isLogicalOrAndText(prevBin.Operator) && opText == "??") {
				p.report(right.Location(), diag.IllegalNullishCoalescingLeftOperand)
			}
		}

		left = &ast.BinaryExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Operator: opText, Left: left, Right: right}
	}
	return left
}

func isLogicalOrAndText(s string) bool { return s == "||" || s == "&&" }

// parseUnary parses prefix unary/update operators, falling through to the
// postfix loop for a primary expression.
func (p *Parser) parseUnary(ctx ExpressionContext) ast.Expression {
	first := p.mark()
	switch p.tok.Kind {
	case token.PlusPlus, token.MinusMinus:
		opText := p.tok.Text
		p.advance(lexer.RegexPermitted)
		operand := p.parseUnary(ctx)
		return &ast.UpdateExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Operator: opText, Operand: operand, Prefix: true}
	case token.Plus, token.Minus, token.Tilde, token.Bang:
		opText := p.tok.Text
		p.advance(lexer.RegexPermitted)
		operand := p.parseUnary(ctx)
		return &ast.UnaryExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Operator: opText, Operand: operand}
	case token.Delete, token.Void, token.Typeof:
		opText := p.tok.Text
		p.advance(lexer.RegexPermitted)
		operand := p.parseUnary(ctx)
		return &ast.UnaryExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Operator: opText, Operand: operand}
	}
	return p.parsePostfix(ctx)
}

// parsePostfix parses a primary expression and applies the postfix
// operator loop: member access, call, index, optional chaining, and
// postfix update, subject to the no-line-break rule for `++`/`--` (§4.D).
func (p *Parser) parsePostfix(ctx ExpressionContext) ast.Expression {
	first := p.mark()
	left := p.parsePrimary(ctx)

	var chainBase ast.Expression

	for {
		switch {
		case p.is(token.Dot) || p.is(token.DotDot):
			descendant := p.is(token.DotDot)
			p.advance(lexer.Normal)
			qid := p.parseQualifiedIdentifier()
			left = &ast.MemberExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Object: left, Property: qid, Descendant: descendant}

		case p.is(token.LParen):
			args := p.parseArguments()
			left = &ast.CallExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Callee: left, Arguments: args}

		case p.is(token.LBracket):
			p.advance(lexer.RegexPermitted)
			key := p.parseExpression(exprCtx())
			p.expect(token.RBracket, lexer.Normal)
			left = &ast.ComputedMemberExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Object: left, Key: key}

		case p.is(token.Bang):
			p.advance(lexer.Normal)
			left = &ast.NonNullExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Operand: left}

		case p.is(token.QuestionDot):
			p.advance(lexer.Normal)
			if chainBase == nil {
				chainBase = left
				left = p.parseOptionalChainStep(&ast.OptionalChainingPlaceholder{BaseNode: ast.BaseNode{Loc: p.loc}}, first)
			} else {
				left = p.parseOptionalChainStep(left, first)
			}

		case (p.is(token.PlusPlus) || p.is(token.MinusMinus)) && !left.Location().LineBreak(p.loc):
			opText := p.tok.Text
			p.advance(lexer.Normal)
			left = &ast.UpdateExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Operator: opText, Operand: left, Prefix: false}

		default:
			if chainBase != nil {
				return &ast.OptionalChainingExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Base: chainBase, Expression: left}
			}
			return left
		}
	}
}

// parseOptionalChainStep parses the single accessor immediately following
// `?.` (a property name, a call, or an index), attaching it to base.
func (p *Parser) parseOptionalChainStep(base ast.Expression, first int) ast.Expression {
	switch {
	case p.is(token.LParen):
		args := p.parseArguments()
		return &ast.CallExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Callee: base, Arguments: args}
	case p.is(token.LBracket):
		p.advance(lexer.RegexPermitted)
		key := p.parseExpression(exprCtx())
		p.expect(token.RBracket, lexer.Normal)
		return &ast.ComputedMemberExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Object: base, Key: key}
	default:
		qid := p.parseQualifiedIdentifier()
		return &ast.MemberExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Object: base, Property: qid}
	}
}

func (p *Parser) parseArguments() []ast.Expression {
	p.advance(lexer.RegexPermitted) // '('
	var args []ast.Expression
	if !p.is(token.RParen) {
		args = append(args, p.parseAssignment(exprCtx()))
		for p.consume(token.Comma, lexer.RegexPermitted) {
			args = append(args, p.parseAssignment(exprCtx()))
		}
	}
	p.expect(token.RParen, lexer.Normal)
	return args
}

// parseQualifiedIdentifier parses an identifier fragment, with an optional
// `::` qualifier, `*` wildcard, bracketed computed name, or `@` attribute
// prefix (§3 structural invariant).
func (p *Parser) parseQualifiedIdentifier() *ast.QualifiedIdentifier {
	first := p.mark()
	attribute := false
	if p.is(token.At) {
		attribute = true
		p.advance(lexer.Normal)
	}

	qid := &ast.QualifiedIdentifier{Attribute: attribute}

	switch {
	case p.is(token.Star):
		qid.Asterisk = true
		p.advance(lexer.Normal)
	case p.is(token.LBracket):
		p.advance(lexer.RegexPermitted)
		qid.Bracket = p.parseExpression(exprCtx())
		p.expect(token.RBracket, lexer.Normal)
	case p.is(token.Identifier) || p.tok.Kind.IsKeyword():
		qid.Name = p.tok.Text
		p.advance(lexer.Normal)
	default:
		p.report(p.loc, diag.ExpectedIdentifier, diag.TokenArg{Token: p.tok})
	}

	if p.is(token.ColonColon) {
		qualifierLoc := p.finish(first)
		qid.Qualifier = &ast.Identifier{BaseNode: ast.BaseNode{Loc: qualifierLoc}, Name: qid.Name}
		p.advance(lexer.Normal)
		inner := p.parseQualifiedIdentifier()
		qid.Name = inner.Name
		qid.Asterisk = inner.Asterisk
		qid.Bracket = inner.Bracket
	}

	qid.Loc = p.finish(first)
	return qid
}

// parsePrimary dispatches on the current token to parse a primary
// expression (§4.I).
func (p *Parser) parsePrimary(ctx ExpressionContext) ast.Expression {
	first := p.mark()

	switch p.tok.Kind {
	case token.Null:
		p.advance(lexer.Normal)
		return &ast.NullLiteral{BaseNode: ast.BaseNode{Loc: p.finish(first)}}
	case token.True, token.False:
		v := p.tok.Kind == token.True
		p.advance(lexer.Normal)
		return &ast.BooleanLiteral{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Value: v}
	case token.This:
		p.advance(lexer.Normal)
		return &ast.ThisExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}}
	case token.Super:
		p.advance(lexer.Normal)
		if !(p.is(token.Dot) || p.is(token.DotDot) || p.is(token.LParen) || p.is(token.LBracket)) {
			p.report(p.finish(first), diag.NotAllowedHere)
		}
		return &ast.SuperExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}}
	case token.NumericLiteral:
		text := p.tok.Text
		p.advance(lexer.Normal)
		return ast.NewNumericLiteral(p.finish(first), text)
	case token.StringLiteral:
		v := p.tok.Text
		p.advance(lexer.Normal)
		return &ast.StringLiteral{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Value: v}
	case token.RegExpLiteral:
		body, flags := p.tok.Text, p.tok.RegExpFlags
		p.advance(lexer.Normal)
		return &ast.RegExpLiteral{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Body: body, Flags: flags}
	case token.LParen:
		p.advance(lexer.RegexPermitted)
		inner := p.parseExpression(exprCtx())
		p.expect(token.RParen, lexer.Normal)
		return &ast.ParenExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Expression: inner}
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseObjectInitializer()
	case token.Function:
		return p.parseFunctionExpression()
	case token.New:
		return p.parseNewExpression()
	case token.Less:
		return p.parseXmlLiteralExpression()
	case token.At:
		qid := p.parseQualifiedIdentifier()
		return &ast.AttributeExpression{BaseNode: ast.BaseNode{Loc: qid.Location()}, Attribute: &ast.NamespaceAttribute{BaseNode: ast.BaseNode{Loc: qid.Location()}, Name: qid.Name}}
	case token.Import:
		s := p.save()
		p.advance(lexer.Normal)
		if p.is(token.Dot) {
			p.advance(lexer.Normal)
			if p.isIdentifierText("meta") {
				p.advance(lexer.Normal)
				return &ast.ImportMetaExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}}
			}
		}
		p.restore(s)
	}

	if p.is(token.Identifier) || p.tok.Kind.IsKeyword() {
		qid := p.parseQualifiedIdentifier()
		if qid.Qualifier == nil && !qid.Asterisk && qid.Bracket == nil && !qid.Attribute {
			return &ast.Identifier{BaseNode: ast.BaseNode{Loc: qid.Location()}, Name: qid.Name}
		}
		return qid
	}

	p.report(p.loc, diag.ExpectedExpression, diag.TokenArg{Token: p.tok})
	loc := p.loc
	if !p.is(token.EOF) {
		p.advance(lexer.Normal)
	}
	return ast.NewInvalidatedExpression(loc)
}

func (p *Parser) parseArrayLiteral() *ast.ArrayLiteral {
	first := p.mark()
	p.advance(lexer.RegexPermitted) // '['
	lit := &ast.ArrayLiteral{}
	for !p.is(token.RBracket) && !p.is(token.EOF) {
		if p.is(token.Comma) {
			lit.Elements = append(lit.Elements, nil) // elision
			p.advance(lexer.RegexPermitted)
			continue
		}
		if p.is(token.Ellipsis) {
			restFirst := p.mark()
			p.advance(lexer.RegexPermitted)
			target := p.parseAssignment(exprCtx())
			lit.Elements = append(lit.Elements, &ast.RestElement{BaseNode: ast.BaseNode{Loc: p.finish(restFirst)}, Target: target})
		} else {
			lit.Elements = append(lit.Elements, p.parseAssignment(exprCtx()))
		}
		if !p.consume(token.Comma, lexer.RegexPermitted) {
			break
		}
	}
	p.expect(token.RBracket, lexer.Normal)
	lit.Loc = p.finish(first)
	return lit
}

func (p *Parser) parseObjectInitializer() *ast.ObjectInitializer {
	first := p.mark()
	p.advance(lexer.Normal) // '{'
	obj := &ast.ObjectInitializer{}
	for !p.is(token.RBrace) && !p.is(token.EOF) {
		fieldFirst := p.mark()
		var key ast.Expression
		switch {
		case p.is(token.StringLiteral):
			key = &ast.StringLiteral{BaseNode: ast.BaseNode{Loc: p.loc}, Value: p.tok.Text}
			p.advance(lexer.Normal)
		case p.is(token.NumericLiteral):
			key = ast.NewNumericLiteral(p.loc, p.tok.Text)
			p.advance(lexer.Normal)
		default:
			name := p.tok.Text
			keyLoc := p.loc
			p.advance(lexer.Normal)
			key = &ast.Identifier{BaseNode: ast.BaseNode{Loc: keyLoc}, Name: name}
		}

		f := &ast.ObjectField{Key: key}
		if p.consume(token.Colon, lexer.RegexPermitted) {
			f.Value = p.parseAssignment(exprCtx())
		} else {
			f.Shorthand = true
		}
		f.Loc = p.finish(fieldFirst)
		obj.Fields = append(obj.Fields, f)

		if !p.consume(token.Comma, lexer.Normal) {
			break
		}
	}
	p.expect(token.RBrace, lexer.Normal)
	obj.Loc = p.finish(first)
	return obj
}

func (p *Parser) parseNewExpression() ast.Expression {
	first := p.mark()
	p.advance(lexer.RegexPermitted) // 'new'
	callee := p.parseMemberOnlyChain()
	n := &ast.NewExpression{Callee: callee}
	if p.is(token.LParen) {
		n.Arguments = p.parseArguments()
		n.HasArgs = true
	}
	n.Loc = p.finish(first)
	return n
}

// parseMemberOnlyChain parses a primary expression followed only by member
// accesses (no calls), used for `new Callee(...)` where the call
// parenthesis belongs to `new` itself rather than the callee chain.
func (p *Parser) parseMemberOnlyChain() ast.Expression {
	first := p.mark()
	left := p.parsePrimary(exprCtx())
	for p.is(token.Dot) {
		p.advance(lexer.Normal)
		qid := p.parseQualifiedIdentifier()
		left = &ast.MemberExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Object: left, Property: qid}
	}
	return left
}

// tryParseArrowFunction recognises the two arrow-function forms, `Identifier
// '=>' ConciseBody` and `'(' params ')' '=>' ConciseBody` (§3 supplemented
// extension), backing off cleanly to ordinary assignment parsing when no
// `=>` follows.
func (p *Parser) tryParseArrowFunction(ctx ExpressionContext) (ast.Expression, bool) {
	if !ctx.AllowAssignment {
		return nil, false
	}

	if p.is(token.Identifier) {
		s := p.save()
		first := p.mark()
		paramLoc := p.loc
		name := p.tok.Text
		p.advance(lexer.Normal)
		if !p.is(token.FatArrow) {
			p.restore(s)
			return nil, false
		}
		p.advance(lexer.RegexPermitted)
		param := &ast.Parameter{
			BaseNode: ast.BaseNode{Loc: paramLoc},
			Kind:     ast.ParameterRequired,
			Binding:  &ast.TypedDestructuring{BaseNode: ast.BaseNode{Loc: paramLoc}, Pattern: &ast.Identifier{BaseNode: ast.BaseNode{Loc: paramLoc}, Name: name}},
		}
		common := &ast.FunctionCommon{Params: []*ast.Parameter{param}}
		common.Body = p.parseArrowConciseBody()
		common.Loc = p.finish(first)
		return &ast.FunctionExpression{BaseNode: ast.BaseNode{Loc: common.Loc}, Arrow: true, Common: common}, true
	}

	if p.is(token.LParen) && p.arrowLookaheadIsArrow() {
		first := p.mark()
		common := &ast.FunctionCommon{}
		common.Params = p.parseParameterList()
		p.expect(token.FatArrow, lexer.RegexPermitted)
		common.Body = p.parseArrowConciseBody()
		common.Loc = p.finish(first)
		return &ast.FunctionExpression{BaseNode: ast.BaseNode{Loc: common.Loc}, Arrow: true, Common: common}, true
	}

	return nil, false
}

// arrowLookaheadIsArrow peeks past a balanced '(' ... ')' for an immediately
// following '=>', without invoking any parser with reporting side effects.
func (p *Parser) arrowLookaheadIsArrow() bool {
	s := p.save()
	depth := 0
	for {
		switch p.tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		case token.EOF:
			p.restore(s)
			return false
		}
		p.advance(lexer.Normal)
		if depth == 0 {
			break
		}
	}
	ok := p.is(token.FatArrow)
	p.restore(s)
	return ok
}

// parseArrowConciseBody parses an arrow function's body: a brace block, or
// an assignment-level expression.
func (p *Parser) parseArrowConciseBody() ast.Node {
	if p.is(token.LBrace) {
		return p.parseBlock(newDirectiveContext(TopLevel))
	}
	return p.parseAssignment(exprCtx())
}

func (p *Parser) parseFunctionExpression() *ast.FunctionExpression {
	first := p.mark()
	p.advance(lexer.Normal) // 'function'
	name := ""
	if p.is(token.Identifier) {
		name = p.tok.Text
		p.advance(lexer.Normal)
	}
	common := p.parseFunctionCommon()
	return &ast.FunctionExpression{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Name: name, Common: common}
}
