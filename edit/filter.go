package edit

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// filterEnv is the view of an instruction a filter expression sees.
type filterEnv struct {
	Op       string `expr:"op"`
	Target   string `expr:"target"`
	FindText string `expr:"findText"`
	Text     string `expr:"text"`
}

// CompileFilter compiles a predicate over instruction fields, e.g.
//
//	op == "comment" && target startsWith "b0"
func CompileFilter(src string) (*vm.Program, error) {
	prg, err := expr.Compile(src, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("bad filter %q: %w", src, err)
	}
	return prg, nil
}

// Filter returns the instructions matching the compiled predicate,
// preserving batch order.
func Filter(b *Batch, prg *vm.Program) (*Batch, error) {
	out := &Batch{Author: b.Author, Version: b.Version}
	for i, in := range b.Edits {
		env := filterEnv{
			Op:       string(in.Op()),
			Target:   in.Ref(),
			FindText: FindTextOf(in),
		}
		switch v := in.(type) {
		case Comment:
			env.Text = v.Text
		case CommentRange:
			env.Text = v.Text
		case CommentHighlight:
			env.Text = v.Text
		case Replace:
			env.Text = v.NewText
		case Insert:
			env.Text = v.Text
		case InsertAfterText:
			env.Text = v.InsertText
		}
		res, err := expr.Run(prg, env)
		if err != nil {
			return nil, fmt.Errorf("filter failed at edit %d: %w", i, err)
		}
		if keep, _ := res.(bool); keep {
			out.Edits = append(out.Edits, in)
		}
	}
	return out, nil
}
