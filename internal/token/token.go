package token

import "fmt"

// Token is a tagged value produced by the lexer. It carries no location —
// the lexer returns (Token, Location) pairs, per §3 "Token" of the spec.
type Token struct {
	Kind Kind

	// Text is the literal-carrying payload:
	//   Identifier, reserved words   -> the identifier/keyword spelling
	//   StringLiteral                -> the decoded string value
	//   NumericLiteral                -> the raw, un-decoded character sequence
	//   RegExpLiteral                 -> the body (between the slashes)
	//   XMLName, XMLText, XMLMarkup,
	//   XMLAttributeValue              -> the raw text
	Text string

	// RegExpFlags holds a RegExpLiteral's flags (the characters after the
	// closing slash).
	RegExpFlags string
}

// DisplayName returns the canonical display form used in diagnostic
// messages: literal-carrying kinds render as a category word
// ("identifier", "string", "number", "regular expression"); keywords and
// punctuators render enclosed in single quotes (e.g. '::', 'instanceof').
func (t Token) DisplayName() string {
	switch t.Kind {
	case Identifier:
		return "identifier"
	case StringLiteral:
		return "string"
	case NumericLiteral:
		return "number"
	case RegExpLiteral:
		return "regular expression"
	case XMLName, XMLText, XMLMarkup, XMLAttributeValue, XMLWhitespace:
		return "XML content"
	case EOF:
		return "end of program"
	}
	if name, ok := t.Kind.ReservedWordName(); ok {
		return quote(name)
	}
	if name, ok := punctuatorNames[t.Kind]; ok {
		return quote(name)
	}
	return fmt.Sprintf("<kind %d>", t.Kind)
}

func quote(s string) string {
	return "'" + s + "'"
}

var punctuatorNames = map[Kind]string{
	LParen: "(", RParen: ")", LBracket: "[", RBracket: "]", LBrace: "{", RBrace: "}",
	Comma: ",", Semicolon: ";", Colon: ":", ColonColon: "::", Dot: ".", DotDot: "..",
	Ellipsis: "...", At: "@",
	Plus: "+", Minus: "-", Star: "*", StarStar: "**", Slash: "/", Percent: "%",
	PlusPlus: "++", MinusMinus: "--",
	Assign: "=", Eq: "==", EqEqEq: "===", NotEq: "!=", NotEqEq: "!==",
	Less: "<", Greater: ">", LessEq: "<=", GreaterEq: ">=",
	Shl: "<<", Shr: ">>", Ushr: ">>>",
	Amp: "&", Pipe: "|", Caret: "^", Tilde: "~", AmpAmp: "&&", PipePipe: "||", XorXor: "^^",
	Bang: "!", Question: "?", QuestionDot: "?.", QuestionQuestion: "??",
	PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=", StarStarAssign: "**=",
	SlashAssign: "/=", PercentAssign: "%=", ShlAssign: "<<=", ShrAssign: ">>=",
	UshrAssign: ">>>=", AmpAssign: "&=", CaretAssign: "^=", PipeAssign: "|=",
	AmpAmpAssign: "&&=", XorXorAssign: "^^=", PipePipeAssign: "||=",
	QuestionQuestionAssign: "??=", FatArrow: "=>",
	LtSlash: "</", SlashGt: "/>",
}
