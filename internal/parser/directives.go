package parser

import (
	"os"
	"path/filepath"

	"github.com/as3toolkit/as3parser/internal/ast"
	"github.com/as3toolkit/as3parser/internal/diag"
	"github.com/as3toolkit/as3parser/internal/lexer"
	"github.com/as3toolkit/as3parser/internal/source"
	"github.com/as3toolkit/as3parser/internal/token"
)

// parseDirective parses a single directive, dispatching on the current
// token per §4.I "Directive parsing". It never returns nil; a labeled
// directive comes back as a LabeledStatement wrapping its body.
func (p *Parser) parseDirective(ctx *DirectiveContext) ast.Directive {
	doc := p.maybeAsDoc()
	first := p.mark()

	switch p.tok.Kind {
	case token.Semicolon:
		p.advance(lexer.Normal)
		return &ast.EmptyStatement{BaseNode: ast.BaseNode{Loc: p.finish(first)}}

	case token.LBrace:
		return p.parseBlock(ctx.enterControl("", ctx.breakable, ctx.iteration))

	case token.Package:
		p.report(p.loc, diag.NotAllowedHere)
		return p.parsePackageDefinition()

	case token.Import:
		return p.parseImportDirective()

	case token.Use:
		return p.parseUseNamespaceDirective()

	case token.Include:
		return p.parseIncludeDirective()

	case token.Var, token.Const:
		d := p.parseVariableDefinition(nil)
		d.AsDoc = doc
		p.consume(token.Semicolon, lexer.RegexPermitted)
		return d

	case token.Function:
		d := p.parseFunctionDefinition(ctx, nil)
		if fd, ok := d.(*ast.FunctionDefinition); ok {
			fd.AsDoc = doc
		}
		return d

	case token.Class:
		d := p.parseClassDefinition(nil)
		d.AsDoc = doc
		return d

	case token.Interface:
		d := p.parseInterfaceDefinition(nil)
		d.AsDoc = doc
		return d

	case token.If:
		return p.parseIfStatement(ctx)

	case token.While:
		return p.parseWhileStatement(ctx)

	case token.Do:
		return p.parseDoWhileStatement(ctx)

	case token.For:
		return p.parseForStatement(ctx)

	case token.Switch:
		return p.parseSwitchStatement(ctx)

	case token.Break:
		breakLoc := p.loc
		p.advance(lexer.Normal)
		d := &ast.BreakStatement{}
		if !breakLoc.LineBreak(p.loc) && p.is(token.Identifier) {
			d.Label = p.tok.Text
			p.advance(lexer.Normal)
		}
		if !ctx.isBreakAllowed(d.Label) {
			p.report(p.finish(first), diag.IllegalBreak)
		}
		if d.Label != "" && !ctx.isLabelDefined(d.Label) {
			p.report(p.finish(first), diag.UndefinedLabel)
		}
		d.Loc = p.finish(first)
		p.consume(token.Semicolon, lexer.RegexPermitted)
		return d

	case token.Continue:
		continueLoc := p.loc
		p.advance(lexer.Normal)
		d := &ast.ContinueStatement{}
		if !continueLoc.LineBreak(p.loc) && p.is(token.Identifier) {
			d.Label = p.tok.Text
			p.advance(lexer.Normal)
		}
		if !ctx.isContinueAllowed(d.Label) {
			p.report(p.finish(first), diag.IllegalContinue)
		}
		if d.Label != "" && !ctx.isLabelDefined(d.Label) {
			p.report(p.finish(first), diag.UndefinedLabel)
		}
		d.Loc = p.finish(first)
		p.consume(token.Semicolon, lexer.RegexPermitted)
		return d

	case token.Return:
		p.advance(lexer.RegexPermitted)
		d := &ast.ReturnStatement{}
		if !p.is(token.Semicolon) && !p.is(token.RBrace) && !p.is(token.EOF) {
			d.Argument = p.parseExpression(exprCtx())
		}
		d.Loc = p.finish(first)
		p.consume(token.Semicolon, lexer.RegexPermitted)
		return d

	case token.Throw:
		p.advance(lexer.RegexPermitted)
		argument := p.parseExpression(exprCtx())
		d := &ast.ThrowStatement{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Argument: argument}
		p.consume(token.Semicolon, lexer.RegexPermitted)
		return d

	case token.Try:
		return p.parseTryStatement(ctx)

	case token.Default:
		return p.parseDefaultXmlNamespaceDirective()
	}

	if p.isIdentifierText(token.ContextualNamespace) {
		s := p.save()
		p.advance(lexer.Normal)
		if p.is(token.Identifier) {
			d := p.parseNamespaceDefinitionAfterKeyword(first, nil)
			d.AsDoc = doc
			return d
		}
		p.restore(s)
	}

	if p.isIdentifierText(token.ContextualConfig) {
		if d, ok := p.tryParseConfigurationDirective(ctx); ok {
			return d
		}
	}

	if attrs, ok := p.tryParseAttributeSequence(); ok {
		return p.parseAttributedDirective(ctx, first, attrs, doc)
	}

	// Labeled statement: Identifier ':' not followed by another ':'.
	if p.is(token.Identifier) {
		s := p.save()
		label := p.tok.Text
		p.advance(lexer.Normal)
		if p.is(token.Colon) {
			p.advance(lexer.RegexPermitted)
			var body ast.Directive
			switch p.tok.Kind {
			case token.While, token.Do, token.For, token.Switch:
				ctx.putLabel(label)
				body = p.parseDirective(ctx)
			default:
				// Any other labeled directive is a `break label` target only.
				inner := ctx.enterControl("", ctx.breakable, ctx.iteration)
				inner.labels[label] = labelInfo{Breakable: true}
				body = p.parseDirective(inner)
			}
			return &ast.LabeledStatement{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Label: label, Body: body}
		}
		p.restore(s)
	}

	expr := p.parseExpression(exprCtx())
	d := &ast.ExpressionStatement{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Expression: expr}
	p.consume(token.Semicolon, lexer.RegexPermitted)
	return d
}

// parseAttributedDirective parses the directive that follows a consumed
// attribute sequence: a variable/function/class/interface/enum/namespace
// definition, or a constructor (inside a ClassBlock, when Name matches
// ctx.ClassName).
func (p *Parser) parseAttributedDirective(ctx *DirectiveContext, first int, attrs []ast.Attribute, doc *ast.AsDoc) ast.Directive {
	switch {
	case p.is(token.Var) || p.is(token.Const):
		d := p.parseVariableDefinition(attrs)
		d.AsDoc = doc
		p.consume(token.Semicolon, lexer.RegexPermitted)
		return d

	case p.is(token.Function):
		d := p.parseFunctionDefinition(ctx, attrs)
		if fd, ok := d.(*ast.FunctionDefinition); ok {
			fd.AsDoc = doc
		}
		return d

	case p.is(token.Class):
		d := p.parseClassDefinition(attrs)
		d.AsDoc = doc
		return d

	case p.is(token.Interface):
		d := p.parseInterfaceDefinition(attrs)
		d.AsDoc = doc
		return d

	case p.isIdentifierText("enum"):
		d := p.parseEnumDefinition(attrs)
		return d

	case p.isIdentifierText(token.ContextualNamespace):
		p.advance(lexer.Normal)
		d := p.parseNamespaceDefinitionAfterKeyword(first, attrs)
		d.AsDoc = doc
		return d
	}

	p.report(p.loc, diag.ExpectedDirectiveKeyword, diag.TokenArg{Token: p.tok})
	loc := p.loc
	if !p.is(token.EOF) {
		p.advance(lexer.Normal)
	}
	return ast.NewInvalidatedDirective(loc)
}

// tryParseAttributeSequence speculatively consumes a run of access
// modifiers, contextual modifiers, namespace attributes, and metadata
// attributes, reporting DuplicateModifier/DuplicateAccessModifier as it
// goes. It always succeeds (returning a possibly-empty slice); the caller
// decides whether what follows is a valid attributed directive.
func (p *Parser) tryParseAttributeSequence() ([]ast.Attribute, bool) {
	var attrs []ast.Attribute
	sawAccess := false
	seenSimple := map[string]bool{}

	for {
		if p.is(token.LBracket) {
			s := p.save()
			lit := p.parseArrayLiteral()
			if meta, ok := ast.ToMetadata(lit); ok {
				attrs = append(attrs, meta)
				continue
			}
			p.restore(s)
			break
		}

		if p.tok.Kind.IsKeyword() {
			name, _ := p.tok.Kind.ReservedWordName()
			if ast.ValidAccessModifier(name) {
				if sawAccess {
					p.report(p.loc, diag.DuplicateAccessModifier)
				}
				sawAccess = true
				attrs = append(attrs, &ast.SimpleAttribute{BaseNode: ast.BaseNode{Loc: p.loc}, Name: name})
				p.advance(lexer.Normal)
				continue
			}
		}

		switch p.tok.Kind {
		case token.Final, token.Native, token.Static, token.Override, token.Dynamic:
			name := p.tok.Text
			if seenSimple[name] {
				p.report(p.loc, diag.DuplicateModifier)
			}
			seenSimple[name] = true
			attrs = append(attrs, &ast.SimpleAttribute{BaseNode: ast.BaseNode{Loc: p.loc}, Name: name})
			p.advance(lexer.Normal)
			continue
		}

		if p.is(token.Identifier) {
			// A bare identifier not followed by something that only makes
			// sense after a namespace attribute is not consumed here; the
			// caller re-checks for "namespace"/enum/etc separately. We
			// conservatively treat any other identifier, when one or more
			// attributes already precede a directive keyword later, as a
			// user-defined namespace attribute only if it is immediately
			// followed by another attribute-sequence token or a directive
			// keyword.
			if len(attrs) > 0 || p.nextLooksLikeDirectiveAfterNamespace() {
				attrs = append(attrs, &ast.NamespaceAttribute{BaseNode: ast.BaseNode{Loc: p.loc}, Name: p.tok.Text})
				p.advance(lexer.Normal)
				continue
			}
		}

		break
	}

	return attrs, len(attrs) > 0
}

// nextLooksLikeDirectiveAfterNamespace peeks, via save/restore, whether the
// current identifier is immediately followed by a directive keyword,
// disambiguating a namespace-attribute prefix from a plain expression
// statement.
func (p *Parser) nextLooksLikeDirectiveAfterNamespace() bool {
	s := p.save()
	p.advance(lexer.Normal)
	ok := p.is(token.Var) || p.is(token.Const) || p.is(token.Function) ||
		p.is(token.Class) || p.is(token.Interface) || p.isIdentifierText(token.ContextualNamespace) ||
		p.isIdentifierText("enum") || p.tok.Kind.IsKeyword() || p.is(token.Identifier) || p.is(token.LBracket)
	p.restore(s)
	return ok
}

func (p *Parser) parseVariableDefinition(attrs []ast.Attribute) *ast.VariableDefinition {
	first := p.mark()
	if len(attrs) > 0 {
		first = attrs[0].Location().First
	}
	kind := ast.VarKind
	if p.is(token.Const) {
		kind = ast.ConstKind
	}
	p.advance(lexer.Normal)

	d := &ast.VariableDefinition{Attributes: attrs, Kind: kind}
	for {
		bindingFirst := p.mark()
		binding := &ast.VariableBinding{Destructuring: p.parseTypedDestructuring()}
		if p.consume(token.Assign, lexer.RegexPermitted) {
			binding.Initializer = p.parseAssignment(exprCtx())
		}
		binding.Loc = p.finish(bindingFirst)
		d.Bindings = append(d.Bindings, binding)
		if !p.consume(token.Comma, lexer.Normal) {
			break
		}
	}
	d.Loc = p.finish(first)
	return d
}

// parseTypedDestructuring parses a destructuring pattern (refined via
// ast.IsValidDestructuring from a parsed expression) with an optional
// `:Type` annotation and trailing `!`.
func (p *Parser) parseTypedDestructuring() *ast.TypedDestructuring {
	first := p.mark()
	patternExpr := p.parseAssignment(exprCtx().withoutIn().withoutAssignment())
	if !ast.IsValidDestructuring(patternExpr) {
		p.report(patternExpr.Location(), diag.MalformedDestructuring)
	}
	td := &ast.TypedDestructuring{Pattern: patternExpr}
	if nonNull, ok := ast.IsNonNullOperation(patternExpr); ok {
		td.Pattern = nonNull
		td.NonNull = true
	}
	if p.consume(token.Colon, lexer.RegexPermitted) {
		td.Type = p.parseTypeExpression()
	}
	td.Loc = p.finish(first)
	return td
}

// parseTypeExpression parses a type annotation: `*`, a bare identifier, or
// a qualified-name path, optionally followed by `!` (non-null hint),
// handled uniformly with ordinary postfix parsing.
func (p *Parser) parseTypeExpression() ast.Expression {
	if p.is(token.Star) && p.opts.AllowAnyType {
		loc := p.loc
		p.advance(lexer.Normal)
		return &ast.QualifiedIdentifier{BaseNode: ast.BaseNode{Loc: loc}, Asterisk: true}
	}
	return p.parsePostfix(exprCtx())
}

func (p *Parser) parseFunctionDefinition(ctx *DirectiveContext, attrs []ast.Attribute) ast.Directive {
	first := p.mark()
	if len(attrs) > 0 {
		first = attrs[0].Location().First
	}
	p.advance(lexer.Normal) // 'function'

	accessor := ast.AccessorNone
	if p.isIdentifierText(token.ContextualGet) {
		accessor = ast.AccessorGet
		p.advance(lexer.Normal)
	} else if p.isIdentifierText(token.ContextualSet) {
		accessor = ast.AccessorSet
		p.advance(lexer.Normal)
	}

	name := p.tok.Text
	p.expect(token.Identifier, lexer.Normal)

	if ctx.Kind == ClassBlock && accessor == ast.AccessorNone && name == ctx.ClassName {
		common := p.parseFunctionCommon()
		if common.ResultType != nil {
			p.report(common.ResultType.Location(), diag.ConstructorMustNotSpecifyResultType)
		}
		cd := &ast.ConstructorDefinition{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Attributes: attrs, Name: name, Common: common, SuperCalled: constructorCallsSuper(common)}
		return cd
	}

	common := p.parseFunctionCommon()
	return &ast.FunctionDefinition{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Attributes: attrs, Accessor: accessor, Name: name, Common: common}
}

// constructorCallsSuper scans the constructor's top-level block directives
// for a bare `super(...)` expression statement (§4.I).
func constructorCallsSuper(common *ast.FunctionCommon) bool {
	block, ok := common.Body.(*ast.Block)
	if !ok {
		return false
	}
	for _, d := range block.Directives {
		es, ok := d.(*ast.ExpressionStatement)
		if !ok {
			continue
		}
		call, ok := es.Expression.(*ast.CallExpression)
		if !ok {
			continue
		}
		if _, ok := call.Callee.(*ast.SuperExpression); ok {
			return true
		}
	}
	return false
}

// parseParameterList parses a parenthesized, comma-separated parameter list,
// validating rest-parameter and optional-parameter ordering (§3 structural
// invariant: Required then Optional then Rest, non-decreasing).
func (p *Parser) parseParameterList() []*ast.Parameter {
	p.expect(token.LParen, lexer.RegexPermitted)

	var params []*ast.Parameter
	seenOptional := false
	seenRest := false
	for !p.is(token.RParen) && !p.is(token.EOF) {
		paramFirst := p.mark()
		param := &ast.Parameter{Kind: ast.ParameterRequired}

		if p.is(token.Ellipsis) {
			p.advance(lexer.Normal)
			if seenRest {
				p.report(p.loc, diag.DuplicateRestParameter)
			}
			seenRest = true
			param.Kind = ast.ParameterRest
			param.Binding = p.parseTypedDestructuring()
			if _, ok := ast.ToIdentifierName(param.Binding.Pattern); !ok {
				p.report(param.Binding.Location(), diag.MalformedRestParameter)
			}
		} else {
			param.Binding = p.parseTypedDestructuring()
			if p.consume(token.Assign, lexer.RegexPermitted) {
				param.Kind = ast.ParameterOptional
				seenOptional = true
				param.Default = p.parseAssignment(exprCtx())
			} else if seenOptional {
				p.report(param.Binding.Location(), diag.WrongParameterPosition)
			}
			if seenRest {
				p.report(param.Binding.Location(), diag.WrongParameterPosition)
			}
		}

		param.Loc = p.finish(paramFirst)
		params = append(params, param)
		if !p.consume(token.Comma, lexer.Normal) {
			break
		}
	}
	p.expect(token.RParen, lexer.Normal)
	return params
}

func (p *Parser) parseFunctionCommon() *ast.FunctionCommon {
	first := p.mark()
	fc := &ast.FunctionCommon{}
	fc.Params = p.parseParameterList()

	if p.consume(token.Colon, lexer.RegexPermitted) {
		fc.ResultType = p.parseTypeExpression()
	}

	if p.consume(token.Semicolon, lexer.RegexPermitted) {
		// Signature-only (interface method, or an abstract/native
		// declaration): no body.
	} else {
		fc.Body = p.parseBlock(newDirectiveContext(TopLevel))
	}
	fc.Loc = p.finish(first)
	return fc
}

func (p *Parser) parseClassDefinition(attrs []ast.Attribute) *ast.ClassDefinition {
	first := p.mark()
	if len(attrs) > 0 {
		first = attrs[0].Location().First
	}
	p.advance(lexer.Normal) // 'class'
	name := p.tok.Text
	p.expect(token.Identifier, lexer.Normal)

	d := &ast.ClassDefinition{Attributes: attrs, Name: name}
	if p.consume(token.Extends, lexer.Normal) {
		d.Extends = p.parseTypeExpression()
	}
	if p.consume(token.Implements, lexer.Normal) {
		d.Implements = append(d.Implements, p.parseTypeExpression())
		for p.consume(token.Comma, lexer.Normal) {
			d.Implements = append(d.Implements, p.parseTypeExpression())
		}
	}
	bctx := newDirectiveContext(ClassBlock)
	bctx.ClassName = name
	d.Block = p.parseBlock(bctx)
	d.Loc = p.finish(first)
	return d
}

func (p *Parser) parseInterfaceDefinition(attrs []ast.Attribute) *ast.InterfaceDefinition {
	first := p.mark()
	if len(attrs) > 0 {
		first = attrs[0].Location().First
	}
	p.advance(lexer.Normal) // 'interface'
	name := p.tok.Text
	p.expect(token.Identifier, lexer.Normal)

	d := &ast.InterfaceDefinition{Attributes: attrs, Name: name}
	if p.consume(token.Extends, lexer.Normal) {
		d.Extends = append(d.Extends, p.parseTypeExpression())
		for p.consume(token.Comma, lexer.Normal) {
			d.Extends = append(d.Extends, p.parseTypeExpression())
		}
	}
	d.Block = p.parseBlock(newDirectiveContext(InterfaceBlock))
	for _, item := range d.Block.Directives {
		switch fn := item.(type) {
		case *ast.FunctionDefinition:
			if len(fn.Attributes) > 0 {
				p.report(fn.Location(), diag.InterfaceMethodHasAnnotations)
			}
			if block, ok := fn.Common.Body.(*ast.Block); ok && len(block.Directives) > 0 {
				p.report(fn.Location(), diag.MethodMustNotHaveBody)
			}
		case *ast.VariableDefinition, *ast.ClassDefinition, *ast.InterfaceDefinition:
			p.report(item.Location(), diag.DirectiveNotAllowedInInterface)
		}
	}
	d.Loc = p.finish(first)
	return d
}

// parseEnumDefinition parses `enum Name { A, B = init }`.
func (p *Parser) parseEnumDefinition(attrs []ast.Attribute) *ast.EnumDefinition {
	first := p.mark()
	if len(attrs) > 0 {
		first = attrs[0].Location().First
	}
	p.advance(lexer.Normal) // 'enum'
	name := p.tok.Text
	p.expect(token.Identifier, lexer.Normal)

	d := &ast.EnumDefinition{Attributes: attrs, Name: name}
	p.expect(token.LBrace, lexer.Normal)
	for !p.is(token.RBrace) && !p.is(token.EOF) {
		memberFirst := p.mark()
		memberName := p.tok.Text
		p.expect(token.Identifier, lexer.Normal)
		m := &ast.EnumMember{Name: memberName}
		if p.consume(token.Assign, lexer.RegexPermitted) {
			m.Initializer = p.parseAssignment(exprCtx())
		}
		m.Loc = p.finish(memberFirst)
		d.Members = append(d.Members, m)
		if !p.consume(token.Comma, lexer.Normal) {
			break
		}
	}
	p.expect(token.RBrace, lexer.Normal)
	d.Loc = p.finish(first)
	return d
}

func (p *Parser) parseNamespaceDefinitionAfterKeyword(first int, attrs []ast.Attribute) *ast.NamespaceDefinition {
	name := p.tok.Text
	p.expect(token.Identifier, lexer.Normal)
	d := &ast.NamespaceDefinition{Attributes: attrs, Name: name}
	if p.consume(token.Assign, lexer.RegexPermitted) {
		d.URI = p.parseAssignment(exprCtx())
	}
	d.Loc = p.finish(first)
	p.consume(token.Semicolon, lexer.RegexPermitted)
	return d
}

func (p *Parser) parseUseNamespaceDirective() ast.Directive {
	first := p.mark()
	p.advance(lexer.Normal) // 'use'
	if !p.consumeIdentifierText(token.ContextualNamespace, lexer.Normal) {
		p.report(p.loc, diag.ExpectedDirectiveKeyword, diag.TokenArg{Token: p.tok})
	}
	expr := p.parseExpression(exprCtx())
	d := &ast.UseNamespaceDirective{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Expression: expr}
	p.consume(token.Semicolon, lexer.RegexPermitted)
	return d
}

// parseDefaultXmlNamespaceDirective parses `default xml namespace = expr;`.
// Left unrestricted on the expression's shape at parse time (§9 open
// question): any assignment-level expression is accepted.
func (p *Parser) parseDefaultXmlNamespaceDirective() ast.Directive {
	first := p.mark()
	p.advance(lexer.Normal) // 'default'
	if !p.consumeIdentifierText("xml", lexer.Normal) {
		p.report(p.loc, diag.ExpectedDirectiveKeyword, diag.TokenArg{Token: p.tok})
	}
	if !p.consumeIdentifierText(token.ContextualNamespace, lexer.Normal) {
		p.report(p.loc, diag.ExpectedDirectiveKeyword, diag.TokenArg{Token: p.tok})
	}
	p.expect(token.Assign, lexer.RegexPermitted)
	expr := p.parseExpression(exprCtx())
	d := &ast.DefaultXMLNamespaceDirective{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Expression: expr}
	p.consume(token.Semicolon, lexer.RegexPermitted)
	return d
}

func (p *Parser) parseImportDirective() ast.Directive {
	first := p.mark()
	p.advance(lexer.Normal) // 'import'

	path := p.tok.Text
	p.expect(token.Identifier, lexer.Normal)
	wildcard := false
	for p.is(token.Dot) {
		p.advance(lexer.Normal)
		if p.is(token.Star) {
			wildcard = true
			path += ".*"
			p.advance(lexer.Normal)
			break
		}
		path += "." + p.tok.Text
		p.expect(token.Identifier, lexer.Normal)
	}

	d := &ast.ImportDirective{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Path: path, Wildcard: wildcard}
	p.consume(token.Semicolon, lexer.RegexPermitted)
	return d
}

// parseIncludeDirective reads the included file relative to the current
// unit's directory, detects cycles via Unit.IncludeChainContains, and
// inlines the nested unit's parsed program as a *Block (§4.I "Include
// processing").
func (p *Parser) parseIncludeDirective() ast.Directive {
	first := p.mark()
	p.advance(lexer.Normal) // 'include'
	pathLit := p.tok.Text
	loc := p.loc
	p.expect(token.StringLiteral, lexer.Normal)
	p.consume(token.Semicolon, lexer.RegexPermitted)

	incl := &ast.IncludeDirective{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Path: pathLit}

	if !p.unit.HasFilePath() {
		p.report(loc, diag.ParentSourceIsNotAFile)
		return incl
	}
	resolved := filepath.Join(filepath.Dir(p.unit.FilePath), pathLit)
	incl.ResolvedPath = resolved

	if p.unit.IncludeChainContains(resolved) {
		p.report(loc, diag.FailedToIncludeFile)
		return incl
	}
	text, err := os.ReadFile(resolved)
	if err != nil {
		p.report(loc, diag.FailedToIncludeFile)
		return incl
	}

	nested := source.NewIncluded(p.unit, resolved, string(text))
	incl.Unit = nested
	nestedProg := ParseProgram(nested, Options{IgnoreAsDoc: p.opts.IgnoreAsDoc, AllowAnyType: p.opts.AllowAnyType})

	return &ast.Block{BaseNode: incl.BaseNode, Directives: nestedProg.Directives}
}

// tryParseConfigurationDirective parses `CONFIG::NAME directive;` or
// `CONFIG::NAME { ... }`, falling back to an ordinary qualified-identifier
// expression statement when `CONFIG::NAME` is not followed by a directive
// position (§9 open question: bare CONFIG::NAME prefers the directive form
// where legal, else parses as an expression).
func (p *Parser) tryParseConfigurationDirective(ctx *DirectiveContext) (ast.Directive, bool) {
	s := p.save()
	first := p.mark()
	namespace := p.tok.Text
	p.advance(lexer.Normal)
	if !p.is(token.ColonColon) {
		p.restore(s)
		return nil, false
	}
	p.advance(lexer.Normal)
	if !p.is(token.Identifier) {
		p.restore(s)
		return nil, false
	}
	constant := p.tok.Text
	p.advance(lexer.Normal)

	cd := &ast.ConfigurationDirective{Namespace: namespace, Constant: constant}
	if p.is(token.LBrace) {
		cd.Body = p.parseBlock(ctx)
	} else if p.is(token.Semicolon) || p.is(token.EOF) {
		p.restore(s)
		return nil, false
	} else {
		cd.Body = p.parseDirective(ctx)
	}
	cd.Loc = p.finish(first)
	return cd, true
}

func (p *Parser) parseIfStatement(ctx *DirectiveContext) ast.Directive {
	first := p.mark()
	p.advance(lexer.Normal) // 'if'
	p.expect(token.LParen, lexer.RegexPermitted)
	test := p.parseExpression(exprCtx())
	p.expect(token.RParen, lexer.Normal)
	consequent := p.parseDirective(ctx.enterControl("", ctx.breakable, ctx.iteration))
	d := &ast.IfStatement{Test: test, Consequent: consequent}
	if p.consume(token.Else, lexer.Normal) {
		d.Alternate = p.parseDirective(ctx.enterControl("", ctx.breakable, ctx.iteration))
	}
	d.Loc = p.finish(first)
	return d
}

func (p *Parser) parseWhileStatement(ctx *DirectiveContext) ast.Directive {
	first := p.mark()
	p.advance(lexer.Normal) // 'while'
	p.expect(token.LParen, lexer.RegexPermitted)
	test := p.parseExpression(exprCtx())
	p.expect(token.RParen, lexer.Normal)
	label, _ := ctx.takeLabel()
	body := p.parseDirective(ctx.enterControl(label, true, true))
	return &ast.WhileStatement{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Test: test, Body: body}
}

func (p *Parser) parseDoWhileStatement(ctx *DirectiveContext) ast.Directive {
	first := p.mark()
	p.advance(lexer.Normal) // 'do'
	label, _ := ctx.takeLabel()
	body := p.parseDirective(ctx.enterControl(label, true, true))
	p.expect(token.While, lexer.Normal)
	p.expect(token.LParen, lexer.RegexPermitted)
	test := p.parseExpression(exprCtx())
	p.expect(token.RParen, lexer.Normal)
	d := &ast.DoWhileStatement{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Body: body, Test: test}
	p.consume(token.Semicolon, lexer.RegexPermitted)
	return d
}

// parseForStatement parses the classic C-style for, for-in, and
// `for each (binding in expr)` forms, validating binding-count and
// initializer restrictions (§4.I).
func (p *Parser) parseForStatement(ctx *DirectiveContext) ast.Directive {
	first := p.mark()
	p.advance(lexer.Normal) // 'for'

	each := false
	if p.isIdentifierText(token.ContextualEach) {
		each = true
		p.advance(lexer.Normal)
	}
	p.expect(token.LParen, lexer.RegexPermitted)

	var init ast.Node
	var varDef *ast.VariableDefinition
	if p.is(token.Var) || p.is(token.Const) {
		varDef = p.parseVariableDefinitionForHead()
		init = varDef
	} else if !p.is(token.Semicolon) {
		init = p.parseExpression(exprCtx().withoutIn())
	}

	if p.is(token.In) {
		p.advance(lexer.RegexPermitted)
		right := p.parseExpression(exprCtx())
		p.expect(token.RParen, lexer.Normal)
		if varDef != nil && len(varDef.Bindings) > 1 {
			p.report(varDef.Location(), diag.MultipleForInBindings)
		}
		if varDef != nil && varDef.Bindings[0].Initializer != nil {
			p.report(varDef.Location(), diag.IllegalForInInitializer)
		}
		label, _ := ctx.takeLabel()
		body := p.parseDirective(ctx.enterControl(label, true, true))
		left := init
		if varDef != nil {
			left = varDef
		}
		return &ast.ForInStatement{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Each: each, Left: left, Right: right, Body: body}
	}

	if each {
		p.report(p.loc, diag.ExpectedDirectiveKeyword, diag.TokenArg{Token: p.tok})
	}

	p.expect(token.Semicolon, lexer.RegexPermitted)
	var test ast.Expression
	if !p.is(token.Semicolon) {
		test = p.parseExpression(exprCtx())
	}
	p.expect(token.Semicolon, lexer.RegexPermitted)
	var update ast.Expression
	if !p.is(token.RParen) {
		update = p.parseExpression(exprCtx())
	}
	p.expect(token.RParen, lexer.Normal)
	label, _ := ctx.takeLabel()
	body := p.parseDirective(ctx.enterControl(label, true, true))
	return &ast.ForStatement{BaseNode: ast.BaseNode{Loc: p.finish(first)}, Init: init, Test: test, Update: update, Body: body}
}

func (p *Parser) parseVariableDefinitionForHead() *ast.VariableDefinition {
	first := p.mark()
	kind := ast.VarKind
	if p.is(token.Const) {
		kind = ast.ConstKind
	}
	p.advance(lexer.Normal)
	d := &ast.VariableDefinition{Kind: kind}
	for {
		bindingFirst := p.mark()
		binding := &ast.VariableBinding{Destructuring: p.parseTypedDestructuring()}
		if p.consume(token.Assign, lexer.RegexPermitted) {
			binding.Initializer = p.parseAssignment(exprCtx().withoutIn())
		}
		binding.Loc = p.finish(bindingFirst)
		d.Bindings = append(d.Bindings, binding)
		if !p.consume(token.Comma, lexer.Normal) {
			break
		}
	}
	d.Loc = p.finish(first)
	return d
}

func (p *Parser) parseSwitchStatement(ctx *DirectiveContext) ast.Directive {
	first := p.mark()
	p.advance(lexer.Normal) // 'switch'
	p.expect(token.LParen, lexer.RegexPermitted)
	discriminant := p.parseExpression(exprCtx())
	p.expect(token.RParen, lexer.Normal)
	label, _ := ctx.takeLabel()
	innerCtx := ctx.enterControl(label, true, false)

	d := &ast.SwitchStatement{Discriminant: discriminant}
	p.expect(token.LBrace, lexer.Normal)
	for !p.is(token.RBrace) && !p.is(token.EOF) {
		caseFirst := p.mark()
		c := &ast.SwitchCase{}
		if p.consume(token.Case, lexer.RegexPermitted) {
			c.Test = p.parseExpression(exprCtx())
		} else {
			p.expect(token.Default, lexer.Normal)
		}
		p.expect(token.Colon, lexer.RegexPermitted)
		for !p.is(token.Case) && !p.is(token.Default) && !p.is(token.RBrace) && !p.is(token.EOF) {
			item := p.parseDirective(innerCtx)
			if item != nil {
				c.Directives = append(c.Directives, item)
			}
		}
		c.Loc = p.finish(caseFirst)
		d.Cases = append(d.Cases, c)
	}
	p.expect(token.RBrace, lexer.Normal)
	d.Loc = p.finish(first)
	return d
}

func (p *Parser) parseTryStatement(ctx *DirectiveContext) ast.Directive {
	first := p.mark()
	p.advance(lexer.Normal) // 'try'
	d := &ast.TryStatement{Block: p.parseBlock(ctx.enterControl("", ctx.breakable, ctx.iteration))}

	for p.consume(token.Catch, lexer.Normal) {
		p.expect(token.LParen, lexer.RegexPermitted)
		cc := &ast.CatchClause{}
		if !p.is(token.RParen) {
			cc.Parameter = p.parseTypedDestructuring()
		}
		p.expect(token.RParen, lexer.Normal)
		cc.Body = p.parseBlock(ctx.enterControl("", ctx.breakable, ctx.iteration))
		d.Catches = append(d.Catches, cc)
	}
	if p.consume(token.Finally, lexer.Normal) {
		d.Finally = p.parseBlock(ctx.enterControl("", ctx.breakable, ctx.iteration))
	}
	d.Loc = p.finish(first)
	return d
}
