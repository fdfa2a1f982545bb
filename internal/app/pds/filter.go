package pds

import (
	"regexp"
	"strings"
)

// FilterConverter turns the configured filter pattern into the value passed with -filter
type FilterConverter func(pattern string) string

var filterSeparators = regexp.MustCompile(`[\s,]*[\r\n,][\s,]*`)

// ListFilterConverter accepts one pattern per line or a comma separated list and joins the patterns
// with single commas. Characters inside a pattern are left alone.
func ListFilterConverter(pattern string) string {
	converted := filterSeparators.ReplaceAllString(strings.TrimSpace(pattern), ",")
	return strings.Trim(converted, ",")
}
