package diag

import (
	"fmt"
	"strconv"
	"strings"
)

// messages maps a Kind to its parameterised English template. Positional
// placeholders are written "{1}", "{2}", ...; a literal escape is written
// as {"text"} and passes "text" through unsubstituted.
var messages = map[Kind]string{
	UnexpectedOrInvalidToken:                      `Unexpected or invalid token`,
	UnexpectedEnd:                                 `Unexpected end of program`,
	FailedProcessingNumericLiteral:                `Failed to process numeric literal {1}`,
	UnallowedNumericSuffix:                         `Unallowed numeric suffix`,
	InputEndedBeforeReachingClosingQuoteForString:  `Input ended before reaching the closing quote for a string literal`,
	UnterminatedComment:                            `Unterminated comment`,
	UnterminatedRegExp:                             `Unterminated regular expression literal`,
	Expected:                                       `Expected {1} before {2}`,
	ExpectedIdentifier:                             `Expected identifier before {1}`,
	ExpectedExpression:                             `Expected expression before {1}`,
	ExpectedXmlName:                                `Expected an XML name before {1}`,
	ExpectedXmlAttributeValue:                      `Expected an XML attribute value before {1}`,
	ExpectedStringLiteral:                          `Expected a string literal before {1}`,
	ExpectedDirectiveKeyword:                       `Expected a directive keyword before {1}`,
	UnallowedLineBreak:                             `A line break is not allowed here`,
	ExpressionMustNotFollowLineBreak:               `Expression must not follow a line break`,
	TokenMustNotFollowLineBreak:                    `{1} must not follow a line break`,
	NotAllowedHere:                                 `{1} is not allowed here`,
	IllegalForInInitializer:                        `A "for..in" variable binding must not have an initializer`,
	MultipleForInBindings:                          `Only one binding is allowed to the left of "in"`,
	IllegalBreak:                                   `Illegal "break" statement`,
	IllegalContinue:                                `Illegal "continue" statement`,
	UndefinedLabel:                                 `Undefined label {1}`,
	IllegalNullishCoalescingLeftOperand:             `"??" must not have a "||" or "&&" operand without parentheses`,
	MalformedArrowFunctionElement:                  `Malformed arrow function parameter`,
	WrongParameterPosition:                         `A required parameter must not follow an optional parameter`,
	DuplicateRestParameter:                         `A parameter list must not have more than one rest parameter`,
	MalformedRestParameter:                         `A rest parameter must not have a default value or type restriction of this form`,
	MalformedDestructuring:                         `Malformed destructuring pattern`,
	UnsupportedDestructuringRest:                   `A rest element is only allowed as the last element of a destructuring pattern`,
	MalformedMetadataElement:                       `Malformed metadata`,
	UnrecognizedMetadataSyntax:                     `Unrecognized metadata syntax`,
	DuplicateModifier:                              `Duplicate modifier {1}`,
	DuplicateAccessModifier:                        `An access modifier was already specified`,
	UnallowedModifier:                              `{1} is not allowed here`,
	InterfaceMethodHasAnnotations:                  `An interface method must not have metadata`,
	MethodMustNotHaveBody:                          `This method must not have a body`,
	MethodMustSpecifyBody:                          `This method must specify a body`,
	MethodMustNotHaveGenerics:                      `This method must not have generic parameters`,
	NestedClassesNotAllowed:                        `A class definition must not be nested inside another class`,
	DirectiveNotAllowedInInterface:                 `This directive is not allowed inside an interface body`,
	ConstructorMustNotSpecifyResultType:            `A constructor must not specify a result type`,
	ParentSourceIsNotAFile:                         `The including unit has no file path to resolve {1} against`,
	FailedToIncludeFile:                            `Failed to include file {1}`,
	UnrecognizedAsDocTag:                           `Unrecognized ASDoc tag {1}`,
	FailedParsingAsDocTag:                          `Failed to parse the contents of ASDoc tag {1}`,
	ExpectedMxmlClosingTag:                         `Expected a closing tag for {1}`,
	MismatchedMxmlClosingTag:                        `Closing tag {1} does not match the currently open element`,
	UnresolvedMxmlNamespacePrefix:                   `Unresolved XML namespace prefix {1}`,
	MalformedMxmlDocument:                          `Malformed MXML document`,
	ExpectedCssSelector:                            `Expected a CSS selector`,
	ExpectedCssDeclaration:                         `Expected a CSS declaration`,
	MalformedCssAtRule:                             `Malformed at-rule {1}`,
	DeprecatedAsDocTagUsage:                        `ASDoc tag {1} is deprecated`,
	ShebangLineIgnored:                             `Shebang line was treated as a comment`,
}

// FormatMessage substitutes args into the Kind's template. Missing
// arguments render as the literal string "None", per §4.E.
func FormatMessage(kind Kind, args []Argument) string {
	template, ok := messages[kind]
	if !ok {
		return fmt.Sprintf("<unknown diagnostic %d>", int(kind))
	}
	return substitute(template, args)
}

func substitute(template string, args []Argument) string {
	var out strings.Builder
	i := 0
	for i < len(template) {
		if template[i] != '{' {
			out.WriteByte(template[i])
			i++
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			out.WriteString(template[i:])
			break
		}
		inner := template[i+1 : i+end]
		i += end + 1
		if strings.HasPrefix(inner, `"`) && strings.HasSuffix(inner, `"`) && len(inner) >= 2 {
			out.WriteString(inner[1 : len(inner)-1])
			continue
		}
		n, err := strconv.Atoi(inner)
		if err != nil || n < 1 || n > len(args) {
			out.WriteString("None")
			continue
		}
		out.WriteString(args[n-1].Render())
	}
	return out.String()
}
