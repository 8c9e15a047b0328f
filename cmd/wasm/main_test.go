//go:build js && wasm

package main

import (
	"encoding/json"
	"errors"
	"syscall/js"
	"testing"

	"github.com/smallyu/go-ecarith/pkg/curves"
)

func TestMarshalPoint(t *testing.T) {
	g := curves.Secp256k1().Generator()
	out, ok := marshalPoint(g, nil).(string)
	if !ok {
		t.Fatalf("Expected a string result, got %T", marshalPoint(g, nil))
	}

	var dto PointDTO
	if err := json.Unmarshal([]byte(out), &dto); err != nil {
		t.Fatalf("Result is not valid JSON: %v", err)
	}
	p, err := toPoint(curves.Secp256k1(), &dto)
	if err != nil {
		t.Fatalf("Round trip failed: %v", err)
	}
	if !p.Equal(g) {
		t.Errorf("Round trip mismatch. Got %s, want %s", p, g)
	}

	if got := marshalPoint(curves.Point{}, errors.New("boom")); got != "error: boom" {
		t.Errorf("Expected an error string, got %v", got)
	}
}

func TestCurves(t *testing.T) {
	var names []string
	if err := json.Unmarshal([]byte(Curves(js.Null(), nil).(string)), &names); err != nil {
		t.Fatalf("Curves returned invalid JSON: %v", err)
	}
	if len(names) != len(curves.Names()) {
		t.Errorf("Expected %d curves, got %v", len(curves.Names()), names)
	}
}
