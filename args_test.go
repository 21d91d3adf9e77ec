package defk

import (
	"errors"
	"strings"
	"testing"
)

func TestValue(t *testing.T) {
	f := Must(Define(Signature{Params: []Param{Required("n"), Optional("s", nil)}, Rest: "rest"}, echo))
	a, err := f.Call(map[string]any{"n": 3, "other": true})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}

	t.Run("typed value", func(t *testing.T) {
		n, err := Value[int](a, "n")
		if err != nil || n != 3 {
			t.Fatalf("got (%d, %v) want (3, nil)", n, err)
		}
	})

	t.Run("nil into nillable type", func(t *testing.T) {
		p, err := Value[*string](a, "s")
		if err != nil || p != nil {
			t.Fatalf("got (%v, %v) want (nil, nil)", p, err)
		}
		v, err := Value[any](a, "s")
		if err != nil || v != nil {
			t.Fatalf("got (%v, %v) want (nil, nil)", v, err)
		}
		m, err := Value[map[string]int](a, "s")
		if err != nil || m != nil {
			t.Fatalf("got (%v, %v) want (nil, nil)", m, err)
		}
	})

	t.Run("nil into value type", func(t *testing.T) {
		for name, get := range map[string]func() error{
			"string": func() error { _, err := Value[string](a, "s"); return err },
			"int":    func() error { _, err := Value[int](a, "s"); return err },
			"struct": func() error { _, err := Value[struct{}](a, "s"); return err },
		} {
			err := get()
			if !errors.Is(err, ErrTypeMismatch) {
				t.Fatalf("%s: expected ErrTypeMismatch, got %v", name, err)
			}
			if !strings.Contains(err.Error(), "nil") {
				t.Fatalf("%s: error does not name the nil value: %v", name, err)
			}
		}
	})

	t.Run("catch-all by name", func(t *testing.T) {
		rest, err := Value[map[string]any](a, "rest")
		if err != nil || len(rest) != 1 || rest["other"] != true {
			t.Fatalf("got (%v, %v)", rest, err)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := Value[string](a, "n")
		if !errors.Is(err, ErrTypeMismatch) {
			t.Fatalf("expected ErrTypeMismatch, got %v", err)
		}
	})

	t.Run("undeclared name", func(t *testing.T) {
		_, err := Value[int](a, "other")
		var ke *KeyError
		if !errors.As(err, &ke) || ke.Key != "other" {
			t.Fatalf("expected KeyError for other, got %v", err)
		}
	})
}

func TestArgs_ZeroValue(t *testing.T) {
	var a Args
	if _, ok := a.Lookup("x"); ok {
		t.Fatalf("zero Args must bind nothing")
	}
	if len(a.Values()) != 0 || a.Whole() != nil || a.Rest() != nil {
		t.Fatalf("zero Args must be empty")
	}
}
