package queuesvc

import (
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/mwhahaha/directord/internal/broker"
)

// statFilter wraps a compiled CEL program evaluated against queue stats.
// When disabled (empty expression), Eval always returns true.
type statFilter struct {
	prog    cel.Program
	enabled bool
}

func newStatFilter(expr string) (statFilter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return statFilter{enabled: false}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("kind", cel.StringType),
		cel.Variable("target", cel.StringType),
		cel.Variable("depth", cel.IntType),
	)
	if err != nil {
		return statFilter{}, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return statFilter{}, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return statFilter{}, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return statFilter{}, err
	}
	return statFilter{prog: prog, enabled: true}, nil
}

// Eval evaluates the compiled expression against one queue stat. Evaluation
// errors count as a non-match.
func (f statFilter) Eval(st broker.QueueStat) bool {
	if !f.enabled {
		return true
	}
	out, _, err := f.prog.Eval(map[string]any{
		"kind":   st.Kind.String(),
		"target": st.Target,
		"depth":  int64(st.Depth),
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}
