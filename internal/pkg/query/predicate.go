// Package query provides small reusable squirrel predicates used by the
// dynamic filters. Each helper returns a single independent predicate;
// callers AND the active ones together.
package query

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// PrefixMatch matches rows whose column starts with prefix, case-insensitively.
func PrefixMatch(column, prefix string) squirrel.Sqlizer {
	return squirrel.ILike{column: EscapeLike(prefix) + "%"}
}

// Contains matches rows whose column contains the given substring.
func Contains(column, s string) squirrel.Sqlizer {
	return squirrel.Like{column: "%" + EscapeLike(s) + "%"}
}

// EscapeLike escapes LIKE metacharacters so user input is matched literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
