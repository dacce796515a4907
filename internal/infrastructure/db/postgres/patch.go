package postgres

import (
	"fmt"
	"strings"
)

// patchSet accumulates column assignments for a partial UPDATE and renders
// them as a single parameterized statement. All values travel as query
// parameters; column names are fixed string literals supplied by the
// repositories, so no user input ever reaches the SQL text.
type patchSet struct {
	assignments []string
	args        []any
}

func (p *patchSet) set(column string, value any) {
	p.args = append(p.args, value)
	p.assignments = append(p.assignments, fmt.Sprintf("%s = $%d", column, len(p.args)))
}

// build renders an UPDATE for the given table and row id, always touching
// updated_at. returning lists the columns echoed back to the caller.
func (p *patchSet) build(table string, id int64, returning string) (string, []any) {
	p.args = append(p.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = now() WHERE id = $%d RETURNING %s",
		table,
		strings.Join(p.assignments, ", "),
		len(p.args),
		returning,
	)
	return query, p.args
}
