package generation

import (
	"regexp"
	"strings"

	"github.com/manasm11/academy/internal/session"
)

var (
	statementPattern   = regexp.MustCompile(`(?m)^[ \t>*-]*STATEMENT:[ \t]*(.+)$`)
	truthPattern       = regexp.MustCompile(`(?m)^[ \t>*-]*TRUTH:[ \t]*\**[ \t]*(TRUE|FALSE)\b`)
	explanationPattern = regexp.MustCompile(`(?m)^[ \t>*-]*EXPLANATION:[ \t]*(.+)$`)
)

// ParseFactCheck pulls the three labelled fields out of a free-text reply.
// ok is false when any field is missing or blank; the caller decides the
// fallback and fills in Topic.
func ParseFactCheck(text string) (session.FactCheckItem, bool) {
	statement, ok := captureField(statementPattern, text)
	if !ok {
		return session.FactCheckItem{}, false
	}
	truth, ok := captureField(truthPattern, text)
	if !ok {
		return session.FactCheckItem{}, false
	}
	explanation, ok := captureField(explanationPattern, text)
	if !ok {
		return session.FactCheckItem{}, false
	}

	return session.FactCheckItem{
		Statement:  statement,
		IsTrue:     truth == "TRUE",
		Correction: explanation,
	}, true
}

func captureField(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(strings.Trim(strings.TrimSpace(m[1]), "*"))
	if v == "" {
		return "", false
	}
	return v, true
}
