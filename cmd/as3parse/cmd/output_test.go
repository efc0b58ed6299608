package cmd

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/as3toolkit/as3parser/internal/parser"
	"github.com/as3toolkit/as3parser/internal/source"
)

func TestToJSONValue_OmitsLocationsByDefault(t *testing.T) {
	unit := source.New("test.as", "package { public class C {} }")
	program := parser.ParseProgram(unit, parser.Options{})

	v := toJSONValue(reflect.ValueOf(program), false)
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected a map, got %T", v)
	}
	if m["type"] != "Program" {
		t.Fatalf("expected type tag 'Program', got %v", m["type"])
	}
	if _, present := m["location"]; present {
		t.Fatalf("expected no 'location' key when includeLoc is false")
	}
}

func TestToJSONValue_IncludesLocationsWhenRequested(t *testing.T) {
	unit := source.New("test.as", "package { public class C {} }")
	program := parser.ParseProgram(unit, parser.Options{})

	v := toJSONValue(reflect.ValueOf(program), true)
	m := v.(map[string]any)
	loc, ok := m["location"].(map[string]any)
	if !ok {
		t.Fatalf("expected a 'location' map when includeLoc is true, got %v", m["location"])
	}
	if _, ok := loc["first"]; !ok {
		t.Fatalf("expected 'first' key in location map")
	}
}

func TestToJSONValue_RoundTripsThroughJSON(t *testing.T) {
	unit := source.New("test.as", `package {
	public class C {
		public function m():void {}
	}
}
`)
	program := parser.ParseProgram(unit, parser.Options{})

	v := toJSONValue(reflect.ValueOf(program), false)
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if decoded["type"] != "Program" {
		t.Fatalf("expected decoded type 'Program', got %v", decoded["type"])
	}
}
