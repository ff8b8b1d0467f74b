package repository

import (
	"strings"

	"github.com/ikkim/fyyur/pkg/util"
)

// nameLike builds a case-insensitive LIKE condition on column. The pattern
// comes from util.LikePattern, so the escape character must be declared.
// PostgreSQL folds case with ILIKE. SQLite's LOWER and LIKE only fold ASCII
// letters, so non-ASCII names match case-sensitively there.
func nameLike(dialect, column string) string {
	if dialect == "postgres" {
		return column + " ILIKE ? ESCAPE '\\'"
	}
	return "LOWER(" + column + ") LIKE ? ESCAPE '\\'"
}

func likeArg(term string) string {
	return strings.ToLower(util.LikePattern(term))
}
