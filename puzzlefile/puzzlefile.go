package puzzlefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/katas/gridgraph"
)

// ErrDuplicateName indicates two puzzle blocks with the same label.
var ErrDuplicateName = errors.New("puzzlefile: duplicate puzzle name")

// Puzzle is one decoded puzzle block.
type Puzzle struct {
	Name   string
	Rows   []string
	Words  []string
	Expect map[string]bool

	// Grid is Rows validated and built by Parse; Write ignores it.
	Grid *gridgraph.Grid
}

// fileRoot is the top-level structure of a puzzle file for decoding.
type fileRoot struct {
	Puzzles []*hclPuzzle `hcl:"puzzle,block"`
}

// hclPuzzle keeps attribute expressions unevaluated until the EvalContext
// is applied.
type hclPuzzle struct {
	Name   string         `hcl:"name,label"`
	Rows   hcl.Expression `hcl:"rows"`
	Words  hcl.Expression `hcl:"words,optional"`
	Expect hcl.Expression `hcl:"expect,optional"`
}

// evalContext exposes the string helpers usable inside attribute values.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"upper":     stdlib.UpperFunc,
			"lower":     stdlib.LowerFunc,
			"split":     stdlib.SplitFunc,
			"join":      stdlib.JoinFunc,
			"reverse":   stdlib.ReverseFunc,
			"trimspace": stdlib.TrimSpaceFunc,
		},
	}
}

// Load reads puzzles from a single .hcl file or from every .hcl file below
// a directory, in lexical path order.
func Load(path string) ([]*Puzzle, error) {
	files, err := findHCLFiles(path)
	if err != nil {
		return nil, err
	}
	parser := hclparse.NewParser()
	var all []*Puzzle
	seen := make(map[string]string)
	for _, file := range files {
		f, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("puzzlefile: failed to parse %s: %w", file, diags)
		}
		puzzles, err := decode(f, file)
		if err != nil {
			return nil, err
		}
		for _, p := range puzzles {
			if prev, dup := seen[p.Name]; dup {
				return nil, fmt.Errorf("puzzle %q in %s and %s: %w", p.Name, prev, file, ErrDuplicateName)
			}
			seen[p.Name] = file
		}
		all = append(all, puzzles...)
	}

	return all, nil
}

// Parse decodes puzzles from HCL source. filename is used in diagnostics only.
func Parse(src []byte, filename string) ([]*Puzzle, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("puzzlefile: failed to parse %s: %w", filename, diags)
	}

	return decode(f, filename)
}

func decode(f *hcl.File, filename string) ([]*Puzzle, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(f.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("puzzlefile: failed to decode %s: %w", filename, diags)
	}

	ctx := evalContext()
	out := make([]*Puzzle, 0, len(root.Puzzles))
	names := make(map[string]struct{}, len(root.Puzzles))
	for _, hp := range root.Puzzles {
		if _, dup := names[hp.Name]; dup {
			return nil, fmt.Errorf("puzzle %q in %s: %w", hp.Name, filename, ErrDuplicateName)
		}
		names[hp.Name] = struct{}{}

		p, err := translate(hp, ctx)
		if err != nil {
			return nil, fmt.Errorf("puzzlefile: puzzle %q in %s: %w", hp.Name, filename, err)
		}
		out = append(out, p)
	}

	return out, nil
}

// translate evaluates one block into a Puzzle and validates its grid.
func translate(hp *hclPuzzle, ctx *hcl.EvalContext) (*Puzzle, error) {
	p := &Puzzle{Name: hp.Name}
	if err := evalInto(hp.Rows, ctx, cty.List(cty.String), &p.Rows); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	if err := evalInto(hp.Words, ctx, cty.List(cty.String), &p.Words); err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	if err := evalInto(hp.Expect, ctx, cty.Map(cty.Bool), &p.Expect); err != nil {
		return nil, fmt.Errorf("expect: %w", err)
	}

	listed := make(map[string]struct{}, len(p.Words))
	for _, w := range p.Words {
		listed[w] = struct{}{}
	}
	var extra []string
	for w := range p.Expect {
		if _, ok := listed[w]; !ok {
			extra = append(extra, w)
		}
	}
	sort.Strings(extra)
	p.Words = append(p.Words, extra...)

	g, err := gridgraph.FromRows(p.Rows)
	if err != nil {
		return nil, err
	}
	p.Grid = g

	return p, nil
}

// evalInto evaluates expr, converts the result to ty and stores it in dst.
// A null value (an omitted optional attribute) leaves dst untouched.
func evalInto(expr hcl.Expression, ctx *hcl.EvalContext, ty cty.Type, dst interface{}) error {
	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return diags
	}
	if val.IsNull() {
		return nil
	}
	converted, err := convert.Convert(val, ty)
	if err != nil {
		return fmt.Errorf("want %s: %w", ty.FriendlyName(), err)
	}

	return gocty.FromCtyValue(converted, dst)
}

// findHCLFiles returns path itself for a file, or every .hcl file below a
// directory in lexical order.
func findHCLFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("puzzlefile: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(p) == ".hcl" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("puzzlefile: walk %s: %w", path, err)
	}

	return files, nil
}
