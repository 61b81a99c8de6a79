package job

import (
	"fmt"
	"strings"
)

// MatrixRow is one concrete combination of matrix variable values. Each slot
// retains the full comma-separated sub-value list for condition matching; the
// first sub-value is the row's effective binding. Rows are immutable once
// built.
type MatrixRow struct {
	names  []string
	values map[string][]string
}

// Bindings returns an owned name to effective-value snapshot for this row.
func (r *MatrixRow) Bindings() map[string]string {
	out := make(map[string]string, len(r.names))
	for _, n := range r.names {
		out[n] = r.values[n][0]
	}
	return out
}

// Matches reports whether every condition's value appears among the row's
// retained sub-values for the condition's variable.
func (r *MatrixRow) Matches(conds []Condition) bool {
	for _, c := range conds {
		if !containsString(r.values[c.Name], c.Value) {
			return false
		}
	}
	return true
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// expandMatrix computes the Cartesian product of the matrix variables in
// declared order, rows ordered with the first variable varying slowest. An
// empty matrix yields exactly one row with no bindings; a variable with an
// empty value list yields no rows at all.
func expandMatrix(matrix Mapping) ([]*MatrixRow, error) {
	names := make([]string, 0, len(matrix))
	values := make([][]string, 0, len(matrix))
	for _, e := range matrix {
		if e.Key == "name" || e.Key == "branch" {
			return nil, fmt.Errorf("matrix variable %q collides with a reserved template token", e.Key)
		}
		seq, ok := e.Value.(Sequence)
		if !ok {
			return nil, fmt.Errorf("matrix variable %q: expected a sequence of strings", e.Key)
		}
		vals := make([]string, 0, len(seq))
		for _, v := range seq {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("matrix variable %q: expected a sequence of strings", e.Key)
			}
			vals = append(vals, s)
		}
		names = append(names, e.Key)
		values = append(values, vals)
	}

	count := 1
	for _, vs := range values {
		count *= len(vs)
	}

	rows := make([]*MatrixRow, 0, count)
	idx := make([]int, len(values))
	for n := 0; n < count; n++ {
		row := &MatrixRow{
			names:  append([]string(nil), names...),
			values: make(map[string][]string, len(names)),
		}
		for i, name := range names {
			row.values[name] = strings.Split(values[i][idx[i]], ",")
		}
		rows = append(rows, row)

		for i := len(idx) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(values[i]) {
				break
			}
			idx[i] = 0
		}
	}
	return rows, nil
}
