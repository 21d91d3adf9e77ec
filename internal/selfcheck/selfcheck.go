// Package selfcheck holds the keyword-function cases run by cmd/defkcheck.
package selfcheck

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/ygrebnov/defk"
)

// Case is one self-check. Run returns nil when the check passes.
type Case struct {
	Name string
	Run  func() error
}

// Result is the outcome of one Case.
type Result struct {
	Name string
	Err  error
}

// Report collects the results of a run.
type Report struct {
	Results []Result
}

// Failed returns the failing results.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Run executes every case whose name contains filter and logs each outcome.
func Run(cases []Case, filter string, logger *slog.Logger) Report {
	var rep Report
	for _, c := range cases {
		if filter != "" && !strings.Contains(c.Name, filter) {
			continue
		}
		err := c.Run()
		if err != nil {
			logger.Error("check failed", slog.String("case", c.Name), slog.Any("error", err))
		} else {
			logger.Debug("check passed", slog.String("case", c.Name))
		}
		rep.Results = append(rep.Results, Result{Name: c.Name, Err: err})
	}
	return rep
}

func expect(want, got any) error {
	if diff := cmp.Diff(want, got); diff != "" {
		return fmt.Errorf("mismatch (-want +got):\n%s", diff)
	}
	return nil
}

type simpleIn struct {
	X int `kw:"x"`
	Y int `kw:"y"`
}

type defaultsIn struct {
	X int `kw:"x"`
	Y int `kw:"y"`
	Z int `kw:"z" default:"10"`
}

type splatIn struct {
	X int            `kw:"x"`
	Y map[string]any `kw:"y,rest"`
}

type asAndSplatIn struct {
	X int            `kw:"x"`
	Z map[string]any `kw:"z"`
	Y map[string]any `kw:"y,rest"`
}

type complexIn struct {
	A     int            `kw:"a"`
	C     int            `kw:"c"`
	Whole map[string]any `kw:"whole"`
	R     int            `kw:"r" default:"101"`
	K     map[string]any `kw:"k,rest"`
}

// Cases returns the built-in checks, each run through both the struct and
// the signature entry points.
func Cases() []Case {
	return []Case{
		{Name: "simple", Run: checkSimple},
		{Name: "simple/missing", Run: checkSimpleMissing},
		{Name: "defaults", Run: checkDefaults},
		{Name: "splat", Run: checkSplat},
		{Name: "as-and-splat", Run: checkAsAndSplat},
		{Name: "complex", Run: checkComplex},
		{Name: "signature/complex", Run: checkSignatureComplex},
	}
}

func checkSimple() error {
	f, err := defk.New(func(in simpleIn) (int, error) { return in.X + in.Y, nil })
	if err != nil {
		return err
	}
	got, err := f.Call(map[string]any{"x": 1, "y": 5, "z": 10})
	if err != nil {
		return err
	}
	return expect(6, got)
}

func checkSimpleMissing() error {
	f, err := defk.New(func(in simpleIn) (int, error) { return in.X + in.Y, nil })
	if err != nil {
		return err
	}
	_, err = f.Call(map[string]any{"x": 5})
	var ke *defk.KeyError
	if !errors.As(err, &ke) {
		return fmt.Errorf("expected missing key error, got %v", err)
	}
	return expect("y", ke.Key)
}

func checkDefaults() error {
	f, err := defk.New(func(in defaultsIn) (int, error) { return in.X + in.Y + in.Z, nil })
	if err != nil {
		return err
	}
	a, err := f.Call(map[string]any{"x": 1, "y": 5})
	if err != nil {
		return err
	}
	b, err := f.Call(map[string]any{"x": 1, "y": 5, "z": 2})
	if err != nil {
		return err
	}
	return expect([]int{16, 8}, []int{a, b})
}

func checkSplat() error {
	f, err := defk.New(func(in splatIn) (splatIn, error) { return in, nil })
	if err != nil {
		return err
	}
	got, err := f.Call(map[string]any{"x": 1, "a": 5, "b": 3})
	if err != nil {
		return err
	}
	return expect(splatIn{X: 1, Y: map[string]any{"a": 5, "b": 3}}, got)
}

func checkAsAndSplat() error {
	f, err := defk.As[asAndSplatIn, asAndSplatIn]("z")(func(in asAndSplatIn) (asAndSplatIn, error) { return in, nil })
	if err != nil {
		return err
	}
	d := map[string]any{"x": 1, "y": 2, "c": 5}
	got, err := f.Call(d)
	if err != nil {
		return err
	}
	return expect(asAndSplatIn{X: 1, Z: d, Y: map[string]any{"y": 2, "c": 5}}, got)
}

func checkComplex() error {
	f, err := defk.As[complexIn, complexIn]("whole")(func(in complexIn) (complexIn, error) { return in, nil })
	if err != nil {
		return err
	}
	m := map[string]any{"a": 1, "c": 5, "f": 9}
	got, err := f.Call(m)
	if err != nil {
		return err
	}
	if reflect.ValueOf(got.Whole).Pointer() != reflect.ValueOf(m).Pointer() {
		return errors.New("alias is not the input mapping")
	}
	return expect(complexIn{A: 1, C: 5, Whole: m, R: 101, K: map[string]any{"f": 9}}, got)
}

func checkSignatureComplex() error {
	sig := defk.Signature{
		Params: []defk.Param{defk.Required("a"), defk.Required("c"), defk.Required("whole"), defk.Optional("r", 101)},
		Rest:   "k",
	}
	f, err := defk.DefineAs[[]any]("whole")(sig, func(a defk.Args) ([]any, error) {
		return []any{a.Get("a"), a.Get("c"), a.Get("r"), a.Rest()}, nil
	})
	if err != nil {
		return err
	}
	got, err := f.Call(map[string]any{"a": 1, "c": 5, "f": 9})
	if err != nil {
		return err
	}
	return expect([]any{1, 5, 101, map[string]any{"f": 9}}, got)
}
