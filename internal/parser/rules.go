package parser

import (
	"regexp"
	"strings"
)

// Rule is a named grammar rule. Match reports the raw lesson name and payload
// when the rule recognises the request.
type Rule struct {
	Name  string
	Match func(text string) (lesson, payload string, ok bool)
}

var (
	// connector, lesson name without colon or quotes, optional marker, colon, payload.
	verbosePattern = regexp.MustCompile(`(?is)(?:урок|lesson|до|to)\s+['"]?([^:'"]+)['"]?\s*(?::|нові|new)?.*?:\s*(.+?)$`)

	// add verb, optional connector between two whitespace runs, lesson name
	// without quotes, optional colon, payload. Without a connector the verb must
	// be followed by at least two whitespace characters.
	tersePattern = regexp.MustCompile(`(?is)(?:додай|add)\s+(?:до|to)?\s+['"]?([^'"]+)['"]?\s*:?\s*(.+?)$`)
)

// VerboseRule recognises "Add words to <lesson> [new cards]: <pairs>" and its
// Ukrainian equivalent "Додай до уроку <lesson> нові картки: <pairs>".
func VerboseRule() Rule {
	return RegexpRule("verbose", verbosePattern)
}

// TerseRule recognises "add to <lesson> [:] <pairs>" and "додай до <lesson> [:] <pairs>",
// typically with a quoted lesson name and no colon.
func TerseRule() Rule {
	return RegexpRule("terse", tersePattern)
}

// DefaultRules returns the rules in priority order.
func DefaultRules() []Rule {
	return []Rule{VerboseRule(), TerseRule()}
}

// RegexpRule builds a Rule from a pattern whose first group captures the
// lesson name and second group captures the payload.
func RegexpRule(name string, re *regexp.Regexp) Rule {
	return Rule{
		Name: name,
		Match: func(text string) (string, string, bool) {
			m := re.FindStringSubmatch(text)
			if len(m) < 3 {
				return "", "", false
			}
			return m[1], m[2], true
		},
	}
}

// cleanLessonName trims the name and strips one layer of surrounding quotes.
func cleanLessonName(raw string) string {
	name := strings.TrimSpace(raw)
	if len(name) > 0 && (name[0] == '\'' || name[0] == '"') {
		name = name[1:]
	}
	if n := len(name); n > 0 && (name[n-1] == '\'' || name[n-1] == '"') {
		name = name[:n-1]
	}
	return strings.TrimSpace(name)
}
