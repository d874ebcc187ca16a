package gen

import (
	"go/token"
	"go/types"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
)

var (
	rules    = ruleset()
	acronyms = make(map[string]struct{})
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	// Common initialisms from golint.
	for _, w := range []string{"ACL", "API", "ASCII", "CPU", "CSS", "DNS", "EOF", "GUID", "HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "LHS", "QPS", "RAM", "RHS", "RPC", "SLA", "SMTP", "SQL", "SSH", "TCP", "TLS", "TTL", "UDP", "UI", "UID", "URI", "URL", "UTF8", "UUID", "VM", "XML", "XMPP", "XSRF", "XSS"} {
		acronyms[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// pascal converts a property name to an exported Go identifier.
//
//	pascal("street") = "Street"
//	pascal("user_id") = "UserID"
//	pascal("full-name") = "FullName"
func pascal(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		upper := strings.ToUpper(w)
		if _, ok := acronyms[upper]; ok {
			words[i] = upper
		} else {
			words[i] = rules.Capitalize(w)
		}
	}
	return strings.Join(words, "")
}

// lowerInitial lower-cases the first letter of s.
func lowerInitial(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// localIdent returns a local variable name for the given identifier
// that does not shadow Go keywords or predeclared identifiers.
func localIdent(name string) string {
	if token.Lookup(name).IsKeyword() || types.Universe.Lookup(name) != nil {
		return "_" + name
	}
	return name
}

func names(ids ...string) map[string]struct{} {
	m := make(map[string]struct{})
	for i := range ids {
		m[ids[i]] = struct{}{}
	}
	return m
}

var (
	// global identifiers declared by the fixed library fragments.
	globalIdent = names(
		"BoundLens",
		"BoundLensStorage",
		"BoundLensType",
		"Compose",
		"DescendBoundLens",
		"IdentityLens",
		"Lens",
		"NewBoundLensStorage",
		"Whole",
	)
	// member names a property cannot take, because the generated struct
	// or its bound lens already declares or promotes them.
	memberIdent = names(
		"BoundLensStorage",
		"Get",
		"Set",
		"Storage",
		"ThroughLens",
	)
)
