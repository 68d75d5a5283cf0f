// Package validate checks generated dashboards and rule files for PromQL
// syntax errors and references to metrics the service does not export.
package validate

import (
	"encoding/json"
	"fmt"

	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings. Errors fail validation, warnings
// do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation passed.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Dashboard validates every PromQL expression in a built dashboard against
// the known metric set. The dashboard is walked through its JSON form, so
// any value with "expr" fields works.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.errorf("marshaling dashboard: %v", err)
		return res
	}

	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		res.errorf("unmarshaling dashboard: %v", err)
		return res
	}

	for _, expr := range collectExprs(tree) {
		checkExpr(expr, known, &res)
	}
	return res
}

// Exprs validates a list of raw PromQL expressions, as found in recording
// and alert rules.
func Exprs(exprs []string, known map[string]bool) Result {
	var res Result
	for _, expr := range exprs {
		checkExpr(expr, known, &res)
	}
	return res
}

func checkExpr(expr string, known map[string]bool, res *Result) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("invalid PromQL %q: %v", expr, err)
		return
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			// Histogram buckets and counts are derived series of a
			// known histogram metric.
			name := vs.Name
			for _, suffix := range []string{"_bucket", "_count", "_sum"} {
				if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
					if known[name[:len(name)-len(suffix)]] {
						return nil
					}
				}
			}
			if !known[name] {
				res.errorf("unknown metric %q in %q", name, expr)
			}
		}
		return nil
	})
}

func collectExprs(tree any) []string {
	var exprs []string
	switch v := tree.(type) {
	case map[string]any:
		for key, val := range v {
			if key == "expr" {
				if s, ok := val.(string); ok && s != "" {
					exprs = append(exprs, s)
				}
				continue
			}
			exprs = append(exprs, collectExprs(val)...)
		}
	case []any:
		for _, item := range v {
			exprs = append(exprs, collectExprs(item)...)
		}
	}
	return exprs
}
