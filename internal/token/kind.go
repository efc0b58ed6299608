// Package token defines the token kind enumeration and the reserved-word
// table used throughout the lexer and parser. The mappings from tokens to
// operators live in internal/operator.
package token

// Kind identifies the lexical category of a token.
type Kind int

const (
	Invalid Kind = iota
	EOF

	// Literal-carrying tokens.
	Identifier
	StringLiteral
	NumericLiteral
	RegExpLiteral

	// XML/E4X content tokens, produced only while the tokenizer is in an
	// XML-sensitive mode (see internal/lexer).
	XMLName
	XMLText
	XMLMarkup
	XMLAttributeValue
	XMLWhitespace

	keywordStart

	As
	Break
	Case
	Catch
	Class
	Const
	Continue
	Default
	Delete
	Do
	Dynamic
	Else
	Extends
	False
	Final
	Finally
	For
	Function
	If
	Implements
	Import
	In
	Include
	Instanceof
	Interface
	Internal
	Is
	Native
	New
	Null
	Override
	Package
	Private
	Protected
	Public
	Return
	Static
	Super
	Switch
	This
	Throw
	True
	Try
	Typeof
	Use
	Var
	Void
	While
	With

	keywordEnd

	// Punctuators.
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	Comma     // ,
	Semicolon // ;
	Colon     // :
	ColonColon
	Dot      // .
	DotDot   // ..
	Ellipsis // ...
	At       // @

	Plus     // +
	Minus    // -
	Star     // *
	StarStar // **
	Slash    // /
	Percent  // %

	PlusPlus   // ++
	MinusMinus // --

	Assign // =
	Eq     // ==
	EqEqEq // ===
	NotEq  // !=
	NotEqEq

	Less      // <
	Greater   // >
	LessEq    // <=
	GreaterEq // >=

	Shl  // <<
	Shr  // >>
	Ushr // >>>

	Amp      // &
	Pipe     // |
	Caret    // ^
	Tilde    // ~
	AmpAmp   // &&
	PipePipe // ||
	XorXor   // ^^

	Bang             // !
	Question         // ?
	QuestionDot      // ?.
	QuestionQuestion // ??

	PlusAssign
	MinusAssign
	StarAssign
	StarStarAssign
	SlashAssign
	PercentAssign
	ShlAssign
	ShrAssign
	UshrAssign
	AmpAssign
	CaretAssign
	PipeAssign
	AmpAmpAssign
	XorXorAssign
	PipePipeAssign
	QuestionQuestionAssign

	FatArrow // =>

	// XML tag delimiters, recognised only while the tokenizer is in an
	// XML-sensitive mode or immediately after an XML-opening '<'.
	LtSlash // </
	SlashGt // />
)

// keywordNames is indexed by Kind - keywordStart - 1.
var keywordNames = [...]string{
	"as", "break", "case", "catch", "class", "const", "continue", "default",
	"delete", "do", "dynamic", "else", "extends", "false", "final",
	"finally", "for", "function", "if", "implements", "import", "in",
	"include", "instanceof", "interface", "internal", "is", "native",
	"new", "null", "override", "package", "private", "protected", "public",
	"return", "static", "super", "switch", "this", "throw", "true", "try",
	"typeof", "use", "var", "void", "while", "with",
}

// Contextual identifiers: recognised by comparing an Identifier token's
// literal text, not by a dedicated reserved Kind, because the grammar
// still allows them as ordinary identifiers outside of specific positions
// (accessor declarations, "for each", "not in"/"is not", "namespace"
// attributes, configuration namespaces).
const (
	ContextualEach      = "each"
	ContextualGet       = "get"
	ContextualSet       = "set"
	ContextualNamespace = "namespace"
	ContextualNot       = "not"
	ContextualConfig    = "CONFIG"
)

var reservedWords map[string]Kind

func init() {
	reservedWords = make(map[string]Kind, len(keywordNames))
	for i, name := range keywordNames {
		reservedWords[name] = keywordStart + 1 + Kind(i)
	}
}

// LookupIdentifier returns the reserved-word Kind for name, or Identifier
// if name is not a reserved word. Recognition is by direct string
// comparison against the fixed keyword table, as required by §4.F.
func LookupIdentifier(name string) Kind {
	if k, ok := reservedWords[name]; ok {
		return k
	}
	return Identifier
}

// IsKeyword reports whether k is one of the fixed reserved words.
func (k Kind) IsKeyword() bool {
	return k > keywordStart && k < keywordEnd
}

// IsLiteral reports whether k is a literal-carrying token kind.
func (k Kind) IsLiteral() bool {
	return k == Identifier || k == StringLiteral || k == NumericLiteral || k == RegExpLiteral
}

// ReservedWordName returns the reserved-word spelling for k, or "" if k is
// not a keyword.
func (k Kind) ReservedWordName() (string, bool) {
	if !k.IsKeyword() {
		return "", false
	}
	return keywordNames[int(k-keywordStart-1)], true
}
