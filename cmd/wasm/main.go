//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-ecarith/pkg/bignum"
	"github.com/smallyu/go-ecarith/pkg/curves"
)

func main() {
	c := make(chan struct{})

	fmt.Println("Go ecarith WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECArith", map[string]interface{}{
		"ScalarBaseMult": js.FuncOf(ScalarBaseMult),
		"ScalarMult":     js.FuncOf(ScalarMult),
		"Add":            js.FuncOf(Add),
		"Double":         js.FuncOf(Double),
		"Curves":         js.FuncOf(Curves),
	})

	<-c
}

// PointDTO carries a point across the JS boundary. Coordinates are 0x hex
// strings because JS numbers cannot hold 256-bit values.
type PointDTO struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// ParamsInput is the JSON argument shared by every exported function.
type ParamsInput struct {
	Curve  string    `json:"curve"`
	Scalar string    `json:"scalar,omitempty"`
	P      *PointDTO `json:"p,omitempty"`
	Q      *PointDTO `json:"q,omitempty"`
}

// ScalarBaseMult computes k*G.
// Arguments:
// 0: JSON string {"curve": "secp256k1", "scalar": "0x..."}
// Returns:
// JSON point or an error string
func ScalarBaseMult(this js.Value, args []js.Value) interface{} {
	in, curve, err := parseInput(args)
	if err != nil {
		return errorString(err)
	}
	k, err := bignum.ParseUint256(in.Scalar)
	if err != nil {
		return errorString(err)
	}
	return marshalPoint(curve.ScalarBaseMult(k))
}

// ScalarMult computes k*P.
// Arguments:
// 0: JSON string {"curve": ..., "scalar": ..., "p": {"x": ..., "y": ...}}
func ScalarMult(this js.Value, args []js.Value) interface{} {
	in, curve, err := parseInput(args)
	if err != nil {
		return errorString(err)
	}
	p, err := toPoint(curve, in.P)
	if err != nil {
		return errorString(err)
	}
	k, err := bignum.ParseUint256(in.Scalar)
	if err != nil {
		return errorString(err)
	}
	return marshalPoint(p.ScalarMult(k))
}

// Add computes P + Q.
// Arguments:
// 0: JSON string {"curve": ..., "p": {...}, "q": {...}}
func Add(this js.Value, args []js.Value) interface{} {
	in, curve, err := parseInput(args)
	if err != nil {
		return errorString(err)
	}
	p, err := toPoint(curve, in.P)
	if err != nil {
		return errorString(err)
	}
	q, err := toPoint(curve, in.Q)
	if err != nil {
		return errorString(err)
	}
	return marshalPoint(p.Add(q))
}

// Double computes 2P.
// Arguments:
// 0: JSON string {"curve": ..., "p": {...}}
func Double(this js.Value, args []js.Value) interface{} {
	in, curve, err := parseInput(args)
	if err != nil {
		return errorString(err)
	}
	p, err := toPoint(curve, in.P)
	if err != nil {
		return errorString(err)
	}
	return marshalPoint(p.Double())
}

// Curves returns the registered curve names as a JSON array.
func Curves(this js.Value, args []js.Value) interface{} {
	b, err := json.Marshal(curves.Names())
	if err != nil {
		return errorString(err)
	}
	return string(b)
}

// Helpers

func parseInput(args []js.Value) (ParamsInput, *curves.Curve, error) {
	var in ParamsInput
	if len(args) != 1 {
		return in, nil, fmt.Errorf("expected 1 argument (jsonParams)")
	}
	if err := json.Unmarshal([]byte(args[0].String()), &in); err != nil {
		return in, nil, fmt.Errorf("invalid json: %w", err)
	}
	curve, err := curves.ByName(in.Curve)
	if err != nil {
		return in, nil, err
	}
	return in, curve, nil
}

func toPoint(curve *curves.Curve, dto *PointDTO) (curves.Point, error) {
	if dto == nil {
		return curves.Point{}, fmt.Errorf("missing point")
	}
	x, err := bignum.ParseUint256(dto.X)
	if err != nil {
		return curves.Point{}, err
	}
	y, err := bignum.ParseUint256(dto.Y)
	if err != nil {
		return curves.Point{}, err
	}
	return curve.TryNewPoint(x, y)
}

func marshalPoint(p curves.Point, err error) interface{} {
	if err != nil {
		return errorString(err)
	}
	b, err := json.Marshal(PointDTO{X: p.X().String(), Y: p.Y().String()})
	if err != nil {
		return errorString(err)
	}
	return string(b)
}

func errorString(err error) string {
	return fmt.Sprintf("error: %v", err)
}
