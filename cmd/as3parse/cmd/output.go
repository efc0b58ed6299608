package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/as3toolkit/as3parser/internal/source"
)

var (
	locationType = reflect.TypeOf(source.Location{})
	unitPtrType  = reflect.TypeOf(&source.Unit{})
)

// isBaseNodeType reports whether t is a BaseNode-shaped embedding (as used
// by both internal/ast and internal/css): a struct named "BaseNode" whose
// sole field is a source.Location. Matching by shape, not by package-
// qualified type identity, lets one JSON walker serve both node trees.
func isBaseNodeType(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.Name() == "BaseNode" &&
		t.NumField() == 1 && t.Field(0).Type == locationType
}

// writeDiagnostics sorts unit's (and every nested unit's) diagnostics and
// writes one formatted line per diagnostic to path (§6 "CLI": "writes ...
// the sorted diagnostic lines to «path».diag").
func writeDiagnostics(unit *source.Unit, path string) error {
	unit.SortDiagnostics()
	lines := unit.NestedDiagnostics()
	var b strings.Builder
	for _, d := range lines {
		b.WriteString(d.FormatDefault())
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// printDiagnostics writes the same lines to stderr, for interactive use.
func printDiagnostics(unit *source.Unit) {
	unit.SortDiagnostics()
	for _, d := range unit.NestedDiagnostics() {
		fmt.Fprintln(os.Stderr, d.FormatDefault())
	}
}

// writeASTJSON renders node generically via reflection and writes it to
// path (§6 "AST JSON": "each variant is tagged by its variant name;
// locations are omitted unless explicitly requested; child nodes are
// nested by structural position").
func writeASTJSON(node any, path string, includeLoc bool) error {
	data, err := json.MarshalIndent(toJSONValue(reflect.ValueOf(node), includeLoc), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding AST: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func toJSONValue(rv reflect.Value, includeLoc bool) any {
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		t := rv.Type()
		out := map[string]any{"type": t.Name()}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" { // unexported
				continue
			}
			if f.Anonymous && isBaseNodeType(f.Type) {
				if includeLoc {
					out["location"] = locationJSON(rv.Field(i).Field(0).Interface().(source.Location))
				}
				continue
			}
			if f.Type == locationType {
				if includeLoc {
					out[f.Name] = locationJSON(rv.Field(i).Interface().(source.Location))
				}
				continue
			}
			if f.Type == unitPtrType {
				// An included unit is referenced, not re-embedded: dumping its
				// full text/diagnostics here would duplicate the whole file.
				if u, ok := rv.Field(i).Interface().(*source.Unit); ok && u != nil {
					out[f.Name] = u.FilePath
				}
				continue
			}
			out[f.Name] = toJSONValue(rv.Field(i), includeLoc)
		}
		return out

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = toJSONValue(rv.Index(i), includeLoc)
		}
		return out

	default:
		return rv.Interface()
	}
}

func locationJSON(loc source.Location) map[string]any {
	return map[string]any{"first": loc.First, "last": loc.Last}
}
