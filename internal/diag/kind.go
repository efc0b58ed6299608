// Package diag defines diagnostic kinds, severities, message arguments, and
// message formatting, per §4.E and §7 of the specification. It has no
// dependency on the lexer, AST, or source packages, so that all of them may
// depend on it without import cycles.
package diag

// Kind enumerates every diagnostic the core can produce. Each has a stable
// integer ID starting at 1024, per §6 ("Diagnostic text format").
type Kind int

const (
	_ Kind = iota + 1023

	// Lexical.
	UnexpectedOrInvalidToken
	UnexpectedEnd
	FailedProcessingNumericLiteral
	UnallowedNumericSuffix
	InputEndedBeforeReachingClosingQuoteForString
	UnterminatedComment
	UnterminatedRegExp

	// Structural.
	Expected
	ExpectedIdentifier
	ExpectedExpression
	ExpectedXmlName
	ExpectedXmlAttributeValue
	ExpectedStringLiteral
	ExpectedDirectiveKeyword

	// Context violations.
	UnallowedLineBreak
	ExpressionMustNotFollowLineBreak
	TokenMustNotFollowLineBreak
	NotAllowedHere
	IllegalForInInitializer
	MultipleForInBindings
	IllegalBreak
	IllegalContinue
	UndefinedLabel
	IllegalNullishCoalescingLeftOperand
	MalformedArrowFunctionElement
	WrongParameterPosition
	DuplicateRestParameter
	MalformedRestParameter
	MalformedDestructuring
	UnsupportedDestructuringRest

	// Metadata.
	MalformedMetadataElement
	UnrecognizedMetadataSyntax

	// Modifiers.
	DuplicateModifier
	DuplicateAccessModifier
	UnallowedModifier

	// Class/interface shape.
	InterfaceMethodHasAnnotations
	MethodMustNotHaveBody
	MethodMustSpecifyBody
	MethodMustNotHaveGenerics
	NestedClassesNotAllowed
	DirectiveNotAllowedInInterface
	ConstructorMustNotSpecifyResultType

	// Includes.
	ParentSourceIsNotAFile
	FailedToIncludeFile

	// ASDoc.
	UnrecognizedAsDocTag
	FailedParsingAsDocTag

	// MXML.
	ExpectedMxmlClosingTag
	MismatchedMxmlClosingTag
	UnresolvedMxmlNamespacePrefix
	MalformedMxmlDocument

	// CSS.
	ExpectedCssSelector
	ExpectedCssDeclaration
	MalformedCssAtRule

	// Warnings.
	DeprecatedAsDocTagUsage
	ShebangLineIgnored
)

// MalformedMetadata is an alias for MalformedMetadataElement: §4.I refers to
// the rejection of a non-conforming "[Identifier(...)]" shape simply as
// "MalformedMetadata", while §7's taxonomy spells it MalformedMetadataElement.
const MalformedMetadata = MalformedMetadataElement

// Severity classifies a diagnostic.
type Severity int

const (
	SyntaxError Severity = iota
	VerifyError
	Warning
)

// String returns the category name used by FormatEnglish: "Syntax error",
// "Verify error", or "Warning".
func (s Severity) String() string {
	switch s {
	case SyntaxError:
		return "Syntax error"
	case VerifyError:
		return "Verify error"
	case Warning:
		return "Warning"
	}
	return "Unknown"
}
