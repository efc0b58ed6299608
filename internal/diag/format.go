package diag

import "fmt"

// FormatEnglish renders the default English diagnostic line described in
// §6: «path»:«line»:«column»: «Category» #«id»: «message», where line
// counts from 1 and column counts from 1.
func FormatEnglish(path string, line, column int, severity Severity, kind Kind, args []Argument) string {
	if path == "" {
		path = "<anonymous>"
	}
	return fmt.Sprintf("%s:%d:%d: %s #%d: %s", path, line, column, severity.String(), int(kind), FormatMessage(kind, args))
}
