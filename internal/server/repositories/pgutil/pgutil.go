// Package pgutil holds SQL helpers shared by the PostgreSQL repositories.
package pgutil

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
)

// UpdateOwned renders an UPDATE of cols restricted to the row with the given
// id and owner. Column names come from the model whitelist, never from the
// request. It returns "" when cols is empty.
func UpdateOwned(table string, cols []models.Column, userID, id string) (string, []any) {
	if len(cols) == 0 {
		return "", nil
	}

	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+2)
	for i, c := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", c.Name, i+1))
		args = append(args, c.Value)
	}
	args = append(args, id, userID)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d AND user_id = $%d",
		table, strings.Join(sets, ", "), len(cols)+1, len(cols)+2)
	return query, args
}

// Affected reports whether res touched at least one row.
func Affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}
