package puzzlefile

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Write renders puzzles as HCL that Parse reads back. Empty Words and
// Expect are omitted.
func Write(w io.Writer, puzzles []*Puzzle) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for i, p := range puzzles {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("puzzle", []string{p.Name}).Body()
		block.SetAttributeValue("rows", stringList(p.Rows))
		if len(p.Words) > 0 {
			block.SetAttributeValue("words", stringList(p.Words))
		}
		if len(p.Expect) > 0 {
			block.SetAttributeValue("expect", boolMap(p.Expect))
		}
	}
	if _, err := w.Write(f.Bytes()); err != nil {
		return fmt.Errorf("puzzlefile: write: %w", err)
	}

	return nil
}

func stringList(ss []string) cty.Value {
	if len(ss) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(ss))
	for i, s := range ss {
		vals[i] = cty.StringVal(s)
	}

	return cty.ListVal(vals)
}

func boolMap(m map[string]bool) cty.Value {
	vals := make(map[string]cty.Value, len(m))
	for k, v := range m {
		vals[k] = cty.BoolVal(v)
	}

	return cty.MapVal(vals)
}
