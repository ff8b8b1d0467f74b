package util

import "strings"

// LikeEscape is the escape character used by LikePattern. Queries must
// declare it with ESCAPE '\'.
const LikeEscape = '\\'

// LikePattern converts a user search term into a SQL LIKE pattern matching
// the term anywhere in a value. A '*' in the term matches any run of
// characters; '%', '_' and '\' match themselves.
//
// Examples:
//
//	"Hop"     -> "%Hop%"
//	"Mus*Hop" -> "%Mus%Hop%"
//	"100%"    -> "%100\%%"
func LikePattern(term string) string {
	var b strings.Builder
	b.Grow(len(term) + 2)
	b.WriteByte('%')
	for _, r := range term {
		switch r {
		case '*':
			b.WriteByte('%')
		case '%', '_', LikeEscape:
			b.WriteRune(LikeEscape)
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('%')
	return b.String()
}
