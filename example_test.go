package defk

import (
	"errors"
	"fmt"
	"sort"
)

func ExampleNew() {
	type Point struct {
		A int `kw:"a"`
		C int `kw:"c"`
	}

	f, err := New(func(p Point) ([]int, error) { return []int{p.A, p.C}, nil })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	out, _ := f.Call(map[string]any{"a": 1, "b": 2, "c": 3})
	fmt.Println(out)

	// Output: [1 3]
}

func ExampleNew_defaults() {
	type In struct {
		A int `kw:"a" default:"100"`
	}

	f := Must(New(func(in In) (int, error) { return in.A, nil }))
	a, _ := f.Call(map[string]any{})
	b, _ := f.Call(map[string]any{"a": 7})
	fmt.Println(a, b)

	// Output: 100 7
}

func ExampleNew_missingKey() {
	type In struct {
		X int `kw:"x"`
		Y int `kw:"y"`
	}

	f := Must(New(func(in In) (int, error) { return in.X + in.Y, nil }))
	_, err := f.Call(map[string]any{"x": 5})
	fmt.Println(err)
	fmt.Println(errors.Is(err, ErrMissingKey))

	// Output:
	// defk: missing key "y"
	// true
}

func ExampleAs() {
	type In struct {
		A          int            `kw:"a"`
		Everything map[string]any `kw:"everything"`
	}

	f, err := As[In, []any]("everything")(func(in In) ([]any, error) {
		return []any{in.A, in.Everything}, nil
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	out, _ := f.Call(map[string]any{"a": 1, "b": 99})
	fmt.Println(out)

	// Output: [1 map[a:1 b:99]]
}

func ExampleNew_rest() {
	type In struct {
		A    int            `kw:"a"`
		Rest map[string]any `kw:"rest,rest"`
	}

	f := Must(New(func(in In) ([]any, error) { return []any{in.A, in.Rest}, nil }))
	out, _ := f.Call(map[string]any{"a": 1, "b": 2, "z": 99})
	fmt.Println(out)

	// Output: [1 map[b:2 z:99]]
}

func ExampleDefine() {
	sig := Signature{
		Params: []Param{Required("x"), Required("y"), Optional("z", 10)},
		Rest:   "extra",
	}
	f := Must(Define(sig, func(a Args) (string, error) {
		sum := a.Get("x").(int) + a.Get("y").(int) + a.Get("z").(int)
		keys := make([]string, 0, len(a.Rest()))
		for k := range a.Rest() {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Sprintf("%d %v", sum, keys), nil
	}))

	out, _ := f.Call(map[string]any{"x": 1, "y": 5, "q": 0, "p": 0})
	fmt.Println(out)
	fmt.Println(f.Signature())

	// Output:
	// 16 [p q]
	// (x, y, z=..., **extra)
}
