// Package witname converts identifiers to WIT naming conventions.
package witname

import (
	"strings"
	"unicode"
)

// Kebab converts s to kebab-case. Any character other than a letter or a
// digit separates words, as does a lower-to-upper case change and the end
// of an acronym ("HTTPRequest" is "http-request"). Digits stay attached to
// the word they follow, so "GetRandomU64" becomes "get-random-u64".
func Kebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	runes := []rune(s)
	pending := false
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pending = b.Len() > 0
			continue
		}
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				pending = b.Len() > 0
			}
		}
		if pending {
			b.WriteByte('-')
			pending = false
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

var keywords = map[string]bool{
	"use": true, "type": true, "func": true, "u8": true, "u16": true, "u32": true, "u64": true,
	"s8": true, "s16": true, "s32": true, "s64": true, "f32": true, "f64": true,
	"float32": true, "float64": true, "char": true, "resource": true, "record": true,
	"flags": true, "variant": true, "enum": true, "bool": true, "string": true,
	"option": true, "result": true, "future": true, "stream": true, "list": true,
	"own": true, "borrow": true, "_": true, "as": true, "from": true, "static": true,
	"interface": true, "tuple": true, "world": true, "import": true, "export": true,
	"package": true, "with": true, "include": true, "constructor": true,
	"error-context": true, "async": true,
}

// IsKeyword reports whether name is reserved in WIT.
func IsKeyword(name string) bool {
	return keywords[name]
}

// Ident escapes name with a leading % when it is a WIT keyword.
func Ident(name string) string {
	if keywords[name] {
		return "%" + name
	}
	return name
}
