package platform

import "strings"

// batchEscaper neutralises the characters cmd.exe still interprets inside a quoted argument
var batchEscaper = strings.NewReplacer(`"`, `""`, `%`, `%%`)

// Escape prepares value for inclusion in the driver script's argument list so that the CLI receives
// the literal value.
//
// Unix targets receive argv through execve and the shell driver forwards "$@", so values are passed
// unchanged. Batch drivers are re-parsed by cmd.exe: the value is wrapped in double quotes, embedded
// quotes are doubled and percent signs are doubled so no variable expansion happens.
func Escape(family Family, value string) string {
	if family == UnixTarget {
		return value
	}
	return `"` + batchEscaper.Replace(value) + `"`
}
