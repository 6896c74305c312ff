package gen

import (
	"go/token"
	"path"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// acronyms are rendered fully upper-case in Go identifiers.
var acronyms = map[string]string{
	"api":  "API",
	"cpu":  "CPU",
	"html": "HTML",
	"http": "HTTP",
	"id":   "ID",
	"ip":   "IP",
	"json": "JSON",
	"rid":  "RID",
	"sql":  "SQL",
	"ttl":  "TTL",
	"uri":  "URI",
	"url":  "URL",
	"utc":  "UTC",
	"uuid": "UUID",
	"xml":  "XML",
}

// reservedMethods are declared on every generated value type, so field
// accessors must not take these names.
var reservedMethods = map[string]struct{}{
	"String":        {},
	"Equal":         {},
	"MarshalJSON":   {},
	"UnmarshalJSON": {},
	"EncodeMsgpack": {},
	"DecodeMsgpack": {},
}

// reservedLocals are identifiers generated code declares or imports, so
// field-derived parameters and struct fields must not shadow them.
var reservedLocals = map[string]struct{}{
	"conjen":  {},
	"errors":  {},
	"fmt":     {},
	"json":    {},
	"maps":    {},
	"missing": {},
	"msgpack": {},
	"reflect": {},
	"slices":  {},
	"strings": {},
	"time":    {},
	"uuid":    {},
	"state":   {},
	"err":     {},
}

// GoName returns the exported Go identifier for an IDL name. Camel,
// snake and kebab case inputs are accepted:
//
//	GoName("fooBar")    // FooBar
//	GoName("user_id")   // UserID
//	GoName("max-count") // MaxCount
func GoName(name string) string {
	words := splitWords(name)
	title := cases.Title(language.Und)
	var b strings.Builder
	for _, w := range words {
		if a, ok := acronyms[w]; ok {
			b.WriteString(a)
			continue
		}
		b.WriteString(title.String(w))
	}
	s := b.String()
	if s == "" {
		return "X"
	}
	if !unicode.IsLetter(rune(s[0])) {
		s = "X" + s
	}
	return s
}

// LowerName returns the unexported form of GoName. A leading acronym is
// lower-cased as a whole: LowerName("id") is "id", LowerName("uuidList")
// is "uuidList".
func LowerName(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return "x"
	}
	rest := GoName(strings.Join(words[1:], "_"))
	if len(words) == 1 {
		rest = ""
	}
	s := words[0] + rest
	if !unicode.IsLetter(rune(s[0])) {
		s = "x" + s
	}
	return s
}

// EnumValueName returns the Go identifier for an upper-snake enum value:
// EnumValueName("DARK_BLUE") is "DarkBlue".
func EnumValueName(value string) string {
	title := cases.Title(language.Und)
	var b strings.Builder
	for _, w := range strings.Split(value, "_") {
		if w == "" {
			continue
		}
		b.WriteString(title.String(strings.ToLower(w)))
	}
	s := b.String()
	if s == "" || !unicode.IsLetter(rune(s[0])) {
		s = "V" + s
	}
	return s
}

// AccessorName returns the accessor method name for a field, avoiding the
// methods every value type declares.
func AccessorName(field string) string {
	name := GoName(field)
	if _, ok := reservedMethods[name]; ok {
		return "Get" + name
	}
	return name
}

// BuilderField returns the struct field (or parameter) name for the given
// IDL field name and ensures it doesn't conflict with Go keywords or
// identifiers used by generated code, and it is not exported.
func BuilderField(name string) string {
	s := LowerName(name)
	if _, ok := reservedLocals[s]; ok || token.Lookup(s).IsKeyword() {
		return "_" + s
	}
	return s
}

// Receiver returns the method receiver name for a type.
func Receiver(typeName string) string {
	r := strings.ToLower(LowerName(typeName)[:1])
	if _, ok := reservedLocals[r]; ok {
		return "_" + r
	}
	return r
}

// FileName returns the generated file name for a definition:
// FileName("StringAliasOne") is "string_alias_one.go".
func FileName(typeName string) string {
	return strings.Join(splitWords(typeName), "_") + ".go"
}

// ElementName returns the singular Go name used by the single-element
// adders of a collection field: ElementName("tags") is "Tag".
func ElementName(field string) string {
	words := splitWords(field)
	if len(words) == 0 {
		return GoName(field)
	}
	words[len(words)-1] = inflect.Singularize(words[len(words)-1])
	return GoName(strings.Join(words, "_"))
}

// PackageName returns a valid Go package name for an import path, derived
// from its last element.
func PackageName(importPath string) string {
	base := strings.ToLower(path.Base(importPath))
	var b strings.Builder
	for _, r := range base {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" || !unicode.IsLetter(rune(s[0])) || token.Lookup(s).IsKeyword() {
		s = "pkg" + s
	}
	return s
}

// splitWords splits an identifier into lower-case words at separators and
// case changes. A run of capitals is one word: "HTTPServer" splits into
// "http" and "server".
func splitWords(name string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0:0]
		}
	}
	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			if len(cur) > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					flush()
				}
			}
			cur = append(cur, unicode.ToLower(r))
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}
