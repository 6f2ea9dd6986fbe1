package util

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE/ILIKE metacharacters so s matches literally
// under the default backslash escape.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern builds an ILIKE pattern matching any text containing s.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}
