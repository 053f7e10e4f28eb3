package postgres

import (
	"fmt"
	"strings"
)

// Assignments collects "column = $n" pairs for a dynamic UPDATE.
type Assignments struct {
	cols []string
	args []any
}

func (a *Assignments) Add(column string, value any) {
	a.args = append(a.args, value)
	a.cols = append(a.cols, fmt.Sprintf("%s = $%d", column, len(a.args)))
}

func (a *Assignments) Len() int { return len(a.cols) }

// Build renders the SET list and appends where to the arguments. The returned
// placeholder is the position of the first where argument.
func (a *Assignments) Build(where ...any) (set string, args []any, next int) {
	args = append(append([]any{}, a.args...), where...)
	return strings.Join(a.cols, ", "), args, len(a.args) + 1
}

// EscapeLike escapes the LIKE metacharacters so the term matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
