// Package operator defines the binary/unary operator set, the precedence
// table, and the token<->operator mappings described in §4.H of the
// specification.
package operator

import "github.com/as3toolkit/as3parser/internal/token"

// Operator identifies a unary or binary operator independent of the token
// that spelled it.
type Operator int

const (
	Invalid Operator = iota

	// Binary arithmetic / bitwise / relational / logical.
	Add
	Subtract
	Multiply
	Divide
	Remainder
	Power
	BitwiseAnd
	BitwiseOr
	BitwiseXor
	LogicalAnd
	LogicalOr
	LogicalXor
	NullishCoalescing
	ShiftLeft
	ShiftRight
	ShiftRightUnsigned
	Equals
	NotEquals
	StrictEquals
	StrictNotEquals
	LessThan
	GreaterThan
	LessThanOrEquals
	GreaterThanOrEquals
	In
	NotIn
	Is
	IsNot
	Instanceof

	// Unary / postfix.
	Positive
	Negative
	LogicalNot
	BitwiseNot
	PreIncrement
	PreDecrement
	PostIncrement
	PostDecrement
	Void
	Typeof
	Delete
)

// Level is a precedence level. Higher values bind tighter.
type Level int

const (
	_ Level = iota
	List
	AssignmentAndOther
	LogicalOrAndOther // || and ??
	LogicalXorLevel
	LogicalAndLevel
	BitwiseOrLevel
	BitwiseXorLevel
	BitwiseAndLevel
	EqualityLevel
	RelationalLevel
	ShiftLevel
	AdditiveLevel
	MultiplicativeLevel
	ExponentiationLevel
	UnaryLevel
	PostfixLevel
)

// Associativity of a binary operator.
type Associativity int

const (
	LeftToRight Associativity = iota
	RightToLeft
)

type info struct {
	level         Level
	rightLevel    Level // level used to parse the right-hand operand
	associativity Associativity
}

var binaryInfo = map[Operator]info{
	LogicalOr:           {LogicalOrAndOther, LogicalXorLevel, LeftToRight},
	NullishCoalescing:    {LogicalOrAndOther, BitwiseOrLevel, LeftToRight},
	LogicalXor:           {LogicalXorLevel, LogicalAndLevel, LeftToRight},
	LogicalAnd:           {LogicalAndLevel, BitwiseOrLevel, LeftToRight},
	BitwiseOr:            {BitwiseOrLevel, BitwiseXorLevel, LeftToRight},
	BitwiseXor:           {BitwiseXorLevel, BitwiseAndLevel, LeftToRight},
	BitwiseAnd:           {BitwiseAndLevel, EqualityLevel, LeftToRight},
	Equals:               {EqualityLevel, RelationalLevel, LeftToRight},
	NotEquals:            {EqualityLevel, RelationalLevel, LeftToRight},
	StrictEquals:         {EqualityLevel, RelationalLevel, LeftToRight},
	StrictNotEquals:      {EqualityLevel, RelationalLevel, LeftToRight},
	LessThan:             {RelationalLevel, ShiftLevel, LeftToRight},
	GreaterThan:          {RelationalLevel, ShiftLevel, LeftToRight},
	LessThanOrEquals:     {RelationalLevel, ShiftLevel, LeftToRight},
	GreaterThanOrEquals:  {RelationalLevel, ShiftLevel, LeftToRight},
	In:                   {RelationalLevel, ShiftLevel, LeftToRight},
	NotIn:                {RelationalLevel, ShiftLevel, LeftToRight},
	Is:                   {RelationalLevel, ShiftLevel, LeftToRight},
	IsNot:                {RelationalLevel, ShiftLevel, LeftToRight},
	Instanceof:           {RelationalLevel, ShiftLevel, LeftToRight},
	ShiftLeft:            {ShiftLevel, AdditiveLevel, LeftToRight},
	ShiftRight:           {ShiftLevel, AdditiveLevel, LeftToRight},
	ShiftRightUnsigned:   {ShiftLevel, AdditiveLevel, LeftToRight},
	Add:                  {AdditiveLevel, MultiplicativeLevel, LeftToRight},
	Subtract:             {AdditiveLevel, MultiplicativeLevel, LeftToRight},
	Multiply:             {MultiplicativeLevel, ExponentiationLevel, LeftToRight},
	Divide:               {MultiplicativeLevel, ExponentiationLevel, LeftToRight},
	Remainder:            {MultiplicativeLevel, ExponentiationLevel, LeftToRight},
	Power:                {ExponentiationLevel, ExponentiationLevel, RightToLeft},
}

// Level returns the left-binding precedence level of a binary operator.
func (op Operator) Level() Level {
	if i, ok := binaryInfo[op]; ok {
		return i.level
	}
	return List
}

// RightLevel returns the minimum precedence to use when parsing the
// right-hand operand of a binary operator. For a left-associative operator
// it is the next tighter level; for the right-associative Power it equals
// Level(); NullishCoalescing uses BitwiseOrLevel (§4.H).
func (op Operator) RightLevel() Level {
	if i, ok := binaryInfo[op]; ok {
		return i.rightLevel
	}
	return List
}

// Associativity returns the binary operator's associativity.
func (op Operator) Associativity() Associativity {
	if i, ok := binaryInfo[op]; ok {
		return i.associativity
	}
	return LeftToRight
}

// binaryTokens maps a token kind to the binary Operator it spells, for
// tokens that are unambiguously binary operators.
var binaryTokens = map[token.Kind]Operator{
	token.Plus:             Add,
	token.Minus:             Subtract,
	token.Star:              Multiply,
	token.Slash:             Divide,
	token.Percent:           Remainder,
	token.StarStar:          Power,
	token.Amp:               BitwiseAnd,
	token.Pipe:              BitwiseOr,
	token.Caret:             BitwiseXor,
	token.AmpAmp:            LogicalAnd,
	token.PipePipe:          LogicalOr,
	token.XorXor:            LogicalXor,
	token.QuestionQuestion:  NullishCoalescing,
	token.Shl:               ShiftLeft,
	token.Shr:               ShiftRight,
	token.Ushr:              ShiftRightUnsigned,
	token.Eq:                Equals,
	token.NotEq:             NotEquals,
	token.EqEqEq:            StrictEquals,
	token.NotEqEq:           StrictNotEquals,
	token.Less:              LessThan,
	token.Greater:           GreaterThan,
	token.LessEq:            LessThanOrEquals,
	token.GreaterEq:         GreaterThanOrEquals,
	token.In:                In,
	token.Is:                Is,
	token.Instanceof:        Instanceof,
}

// ToBinaryOperator returns the Operator that k spells as a binary operator,
// and whether one exists. "not in"/"is not" are not in this table: they
// require two-token lookahead performed by the parser (§4.H, §4.I).
func ToBinaryOperator(k token.Kind) (Operator, bool) {
	op, ok := binaryTokens[k]
	return op, ok
}

var compoundAssignTokens = map[token.Kind]Operator{
	token.PlusAssign:             Add,
	token.MinusAssign:            Subtract,
	token.StarAssign:             Multiply,
	token.SlashAssign:            Divide,
	token.PercentAssign:          Remainder,
	token.StarStarAssign:         Power,
	token.ShlAssign:              ShiftLeft,
	token.ShrAssign:              ShiftRight,
	token.UshrAssign:             ShiftRightUnsigned,
	token.AmpAssign:              BitwiseAnd,
	token.CaretAssign:            BitwiseXor,
	token.PipeAssign:             BitwiseOr,
	token.AmpAmpAssign:           LogicalAnd,
	token.XorXorAssign:           LogicalXor,
	token.PipePipeAssign:         LogicalOr,
	token.QuestionQuestionAssign: NullishCoalescing,
}

// CompoundAssignment returns the underlying Operator for a compound
// assignment token, e.g. PlusAssign -> Add, and whether k was one.
func CompoundAssignment(k token.Kind) (Operator, bool) {
	op, ok := compoundAssignTokens[k]
	return op, ok
}

var operatorSpelling map[Operator]string

func init() {
	operatorSpelling = make(map[Operator]string, len(binaryTokens))
	for tok, op := range binaryTokens {
		if name, ok := reverseSpelling(tok); ok {
			operatorSpelling[op] = name
		}
	}
}

// String renders an operator using its source spelling, for use in
// diagnostic messages and AST dumps.
func (op Operator) String() string {
	if name, ok := operatorSpelling[op]; ok {
		return name
	}
	switch op {
	case NotIn:
		return "not in"
	case IsNot:
		return "is not"
	case Positive:
		return "+"
	case Negative:
		return "-"
	case LogicalNot:
		return "!"
	case BitwiseNot:
		return "~"
	case PreIncrement, PostIncrement:
		return "++"
	case PreDecrement, PostDecrement:
		return "--"
	case Void:
		return "void"
	case Typeof:
		return "typeof"
	case Delete:
		return "delete"
	}
	return "?"
}

func reverseSpelling(k token.Kind) (string, bool) {
	switch k {
	case token.Plus:
		return "+", true
	case token.Minus:
		return "-", true
	case token.Star:
		return "*", true
	case token.Slash:
		return "/", true
	case token.Percent:
		return "%", true
	case token.StarStar:
		return "**", true
	case token.Amp:
		return "&", true
	case token.Pipe:
		return "|", true
	case token.Caret:
		return "^", true
	case token.AmpAmp:
		return "&&", true
	case token.PipePipe:
		return "||", true
	case token.XorXor:
		return "^^", true
	case token.QuestionQuestion:
		return "??", true
	case token.Shl:
		return "<<", true
	case token.Shr:
		return ">>", true
	case token.Ushr:
		return ">>>", true
	case token.Eq:
		return "==", true
	case token.NotEq:
		return "!=", true
	case token.EqEqEq:
		return "===", true
	case token.NotEqEq:
		return "!==", true
	case token.Less:
		return "<", true
	case token.Greater:
		return ">", true
	case token.LessEq:
		return "<=", true
	case token.GreaterEq:
		return ">=", true
	case token.In:
		return "in", true
	case token.Is:
		return "is", true
	case token.Instanceof:
		return "instanceof", true
	}
	return "", false
}
