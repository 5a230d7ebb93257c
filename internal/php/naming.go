package php

import (
	"fmt"
	"strings"
	"unicode"
)

// reservedWords lists PHP keywords and soft-reserved type names that cannot be
// used verbatim as class, method, or variable identifiers.
var reservedWords = map[string]struct{}{
	"abstract": {}, "and": {}, "array": {}, "as": {}, "break": {}, "callable": {},
	"case": {}, "catch": {}, "class": {}, "clone": {}, "const": {}, "continue": {},
	"declare": {}, "default": {}, "do": {}, "echo": {}, "else": {}, "elseif": {},
	"empty": {}, "enddeclare": {}, "endfor": {}, "endforeach": {}, "endif": {},
	"endswitch": {}, "endwhile": {}, "enum": {}, "extends": {}, "final": {},
	"finally": {}, "fn": {}, "for": {}, "foreach": {}, "function": {}, "global": {},
	"goto": {}, "if": {}, "implements": {}, "include": {}, "instanceof": {},
	"insteadof": {}, "interface": {}, "isset": {}, "list": {}, "match": {},
	"namespace": {}, "new": {}, "or": {}, "print": {}, "private": {},
	"protected": {}, "public": {}, "readonly": {}, "require": {}, "return": {},
	"static": {}, "switch": {}, "throw": {}, "trait": {}, "try": {}, "unset": {},
	"use": {}, "var": {}, "while": {}, "xor": {}, "yield": {},
	"int": {}, "float": {}, "bool": {}, "string": {}, "void": {}, "iterable": {},
	"object": {}, "mixed": {}, "never": {}, "null": {}, "true": {}, "false": {},
}

// IsReserved reports whether the identifier collides with a PHP keyword.
func IsReserved(name string) bool {
	_, ok := reservedWords[strings.ToLower(name)]
	return ok
}

func splitWords(input string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(input)
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r):
			if unicode.IsUpper(r) && i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				flush()
			}
			current.WriteRune(r)
		case unicode.IsDigit(r):
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return words
}

// StudlyCase converts an arbitrary identifier to StudlyCaps, the convention
// for PHP class names. Invalid leading characters are prefixed so the result
// is always a legal identifier.
func StudlyCase(input string) string {
	words := splitWords(input)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	for _, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	out := b.String()
	if out != "" && unicode.IsDigit([]rune(out)[0]) {
		out = "Model" + out
	}
	return out
}

// CamelCase converts an identifier to camelCase, the convention for PHP
// method and variable names. Reserved words get an underscore suffix.
func CamelCase(input string) string {
	studly := StudlyCase(input)
	if studly == "" {
		return ""
	}
	runes := []rune(studly)
	runes[0] = unicode.ToLower(runes[0])
	out := string(runes)
	if IsReserved(out) {
		out += "_"
	}
	return out
}

// SnakeCase converts an identifier to snake_case, used for route names and
// config keys.
func SnakeCase(input string) string {
	words := splitWords(input)
	lowered := make([]string, 0, len(words))
	for _, word := range words {
		lowered = append(lowered, strings.ToLower(word))
	}
	return strings.Join(lowered, "_")
}

// ClassName sanitises an identifier into a legal PHP class name. Reserved
// words are escaped with a Model prefix rather than dropped.
func ClassName(input string) string {
	name := StudlyCase(input)
	if name == "" {
		return ""
	}
	if IsReserved(name) {
		name = "Model" + name
	}
	return name
}

// Deduper hands out collision-free identifiers by suffixing a counter when a
// name repeats, preserving first-come ordering.
type Deduper struct {
	seen map[string]int
}

// NewDeduper returns an empty Deduper.
func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[string]int)}
}

// Claim returns name unchanged the first time it is requested and a suffixed
// variant ("name2", "name3", ...) on later requests. Suffixed candidates that
// were themselves claimed earlier are skipped.
func (d *Deduper) Claim(name string) string {
	if name == "" {
		name = "unnamed"
	}
	key := strings.ToLower(name)
	count, taken := d.seen[key]
	if !taken {
		d.seen[key] = 1
		return name
	}
	for {
		count++
		candidate := fmt.Sprintf("%s%d", name, count)
		if _, dup := d.seen[strings.ToLower(candidate)]; !dup {
			d.seen[key] = count
			d.seen[strings.ToLower(candidate)] = 1
			return candidate
		}
	}
}
