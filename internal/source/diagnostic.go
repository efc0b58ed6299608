package source

import "github.com/as3toolkit/as3parser/internal/diag"

// Diagnostic is a located, categorised, parameterised message (§3
// "Diagnostic"). Two diagnostics compare equal iff they share a location
// and kind, which is the relation used for de-duplication at equal offsets
// per severity class (§4.C).
type Diagnostic struct {
	Location Location
	Kind     diag.Kind
	Severity diag.Severity
	Args     []diag.Argument
}

// NewSyntaxError constructs a syntax-error Diagnostic.
func NewSyntaxError(loc Location, kind diag.Kind, args ...diag.Argument) Diagnostic {
	return Diagnostic{Location: loc, Kind: kind, Severity: diag.SyntaxError, Args: args}
}

// NewVerifyError constructs a verify-error Diagnostic.
func NewVerifyError(loc Location, kind diag.Kind, args ...diag.Argument) Diagnostic {
	return Diagnostic{Location: loc, Kind: kind, Severity: diag.VerifyError, Args: args}
}

// NewWarning constructs a warning Diagnostic.
func NewWarning(loc Location, kind diag.Kind, args ...diag.Argument) Diagnostic {
	return Diagnostic{Location: loc, Kind: kind, Severity: diag.Warning, Args: args}
}

// SameAs reports whether d and other share a location and kind (§3).
func (d Diagnostic) SameAs(other Diagnostic) bool {
	return d.Location.Equal(other.Location) && d.Kind == other.Kind
}

// FormatMessage substitutes d's arguments into its message template.
func (d Diagnostic) FormatMessage() string {
	return diag.FormatMessage(d.Kind, d.Args)
}

// FormatDefault renders d in the default English diagnostic-line format
// (§6): «path»:«line»:«column»: «Category» #«id»: «message».
func (d Diagnostic) FormatDefault() string {
	path := ""
	if d.Location.Unit != nil {
		path = d.Location.Unit.FilePath
	}
	return diag.FormatEnglish(path, d.Location.Line(), d.Location.Column(), d.Severity, d.Kind, d.Args)
}

// FormatEnglish is an alias for FormatDefault, named after the §6 heading.
func (d Diagnostic) FormatEnglish() string { return d.FormatDefault() }
