package lexer

import "github.com/as3toolkit/as3parser/internal/token"

// punctuators is checked longest-match-first: entries must be ordered so
// that no prefix of a later entry appears earlier (§4.G "Punctuators").
var punctuators = []struct {
	text string
	kind token.Kind
}{
	{">>>=", token.UshrAssign},
	{"...", token.Ellipsis},
	{">>>", token.Ushr},
	{"<<=", token.ShlAssign},
	{">>=", token.ShrAssign},
	{"**=", token.StarStarAssign},
	{"&&=", token.AmpAmpAssign},
	{"^^=", token.XorXorAssign},
	{"||=", token.PipePipeAssign},
	{"??=", token.QuestionQuestionAssign},
	{"===", token.EqEqEq},
	{"!==", token.NotEqEq},
	{"..", token.DotDot},
	{"::", token.ColonColon},
	{"<<", token.Shl},
	{">>", token.Shr},
	{"<=", token.LessEq},
	{">=", token.GreaterEq},
	{"==", token.Eq},
	{"!=", token.NotEq},
	{"&&", token.AmpAmp},
	{"||", token.PipePipe},
	{"^^", token.XorXor},
	{"++", token.PlusPlus},
	{"--", token.MinusMinus},
	{"**", token.StarStar},
	{"+=", token.PlusAssign},
	{"-=", token.MinusAssign},
	{"*=", token.StarAssign},
	{"/=", token.SlashAssign},
	{"%=", token.PercentAssign},
	{"&=", token.AmpAssign},
	{"^=", token.CaretAssign},
	{"|=", token.PipeAssign},
	{"?.", token.QuestionDot},
	{"??", token.QuestionQuestion},
	{"=>", token.FatArrow},
	{"</", token.LtSlash},
	{"/>", token.SlashGt},
	{"(", token.LParen},
	{")", token.RParen},
	{"[", token.LBracket},
	{"]", token.RBracket},
	{"{", token.LBrace},
	{"}", token.RBrace},
	{",", token.Comma},
	{";", token.Semicolon},
	{":", token.Colon},
	{".", token.Dot},
	{"@", token.At},
	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Star},
	{"/", token.Slash},
	{"%", token.Percent},
	{"=", token.Assign},
	{"<", token.Less},
	{">", token.Greater},
	{"&", token.Amp},
	{"|", token.Pipe},
	{"^", token.Caret},
	{"~", token.Tilde},
	{"!", token.Bang},
	{"?", token.Question},
}

func (l *Lexer) scanPunctuator() (token.Token, bool) {
	for _, p := range punctuators {
		if l.r.PeekSequence(len([]rune(p.text))) == p.text {
			l.r.Skip(len([]rune(p.text)))
			return token.Token{Kind: p.kind, Text: p.text}, true
		}
	}
	return token.Token{}, false
}
