package pds

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// ebcdicCodePages are the host code pages x/text can name
var ebcdicCodePages = map[string]*charmap.Charmap{
	"37":   charmap.CodePage037,
	"1047": charmap.CodePage1047,
	"1140": charmap.CodePage1140,
}

// codePageName returns the encoding name of a host code page number
func codePageName(codePage string) (string, bool) {
	number := strings.TrimLeft(strings.TrimSpace(codePage), "0")
	cm, ok := ebcdicCodePages[number]
	if !ok {
		return "", false
	}
	return cm.String(), true
}
