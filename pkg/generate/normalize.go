package generate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	stringLiteralRe = regexp.MustCompile(`"[^"]*"|'[^']*'`)
	doubleThisRe    = regexp.MustCompile(`\bthis\.this\.`)
	simpleValueRe   = regexp.MustCompile(`^(?:[A-Za-z_]\w*|"[^"]*"|'[^']*'|\d+)$`)
)

// Normalize rewrites a method body from source-framework idiom into class
// idiom. It is a line and text level pass, not a re-parse: setter calls become
// assignments (or an array push for the spread-append idiom), free occurrences
// of known property names gain the `this.` qualifier, and bare statement lines
// gain terminators. Best effort only; a local that shadows a property name of
// the same spelling is qualified anyway.
func Normalize(body string, knownNames []string, setterMap map[string]string) string {
	if body == "" {
		return ""
	}

	normalized := body

	for _, setter := range sortedKeys(setterMap) {
		state := setterMap[setter]

		spreadRe := regexp.MustCompile(
			`(?s)` + regexp.QuoteMeta(setter) + `\(\s*\[\s*\.\.\.\s*` + regexp.QuoteMeta(state) + `\s*,\s*([^\]]+?)\s*\]\s*\)`,
		)

		normalized = replaceSubmatch(spreadRe, normalized, func(tail string) string {
			appended := prefixThis(tail, knownNames)

			if simpleValueRe.MatchString(tail) {
				return fmt.Sprintf("this.%s.push(%s)", state, appended)
			}

			return fmt.Sprintf("this.%s = [...this.%s, %s]", state, state, appended)
		})

		callRe := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(setter) + `\(\s*(.+?)\s*\)`)

		normalized = replaceSubmatch(callRe, normalized, func(arg string) string {
			return fmt.Sprintf("this.%s = %s", state, prefixThis(arg, knownNames))
		})
	}

	normalized = prefixThis(normalized, knownNames)
	normalized = terminateStatements(normalized)

	return doubleThisRe.ReplaceAllString(normalized, "this.")
}

// prefixThis qualifies every free occurrence of a known name, longest name
// first so that overlapping names resolve to the longer one. Text inside
// string literals is protected by placeholder substitution.
func prefixThis(text string, names []string) string {
	if len(names) == 0 {
		return text
	}

	placeholders := make(map[string]string)

	protected := stringLiteralRe.ReplaceAllStringFunc(text, func(lit string) string {
		key := fmt.Sprintf("__STR%d__", len(placeholders))
		placeholders[key] = lit

		return key
	})

	for _, name := range longestFirst(names) {
		re := regexp.MustCompile(`(this\.)?\b` + regexp.QuoteMeta(name) + `\b`)

		protected = re.ReplaceAllStringFunc(protected, func(match string) string {
			if strings.HasPrefix(match, "this.") {
				return match
			}

			return "this." + match
		})
	}

	for key, lit := range placeholders {
		protected = strings.ReplaceAll(protected, key, lit)
	}

	return protected
}

func terminateStatements(text string) string {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed != "" && !strings.HasSuffix(trimmed, ";") &&
			!strings.HasSuffix(trimmed, "{") && !strings.HasSuffix(trimmed, "}") {
			trimmed += ";"
		}

		lines[i] = trimmed
	}

	return strings.Join(lines, "\n")
}

func replaceSubmatch(re *regexp.Regexp, text string, repl func(string) string) string {
	return re.ReplaceAllStringFunc(text, func(match string) string {
		sub := re.FindStringSubmatch(match)
		if len(sub) < 2 {
			return match
		}

		return repl(sub[1])
	})
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func longestFirst(names []string) []string {
	uniq := make(map[string]bool, len(names))

	var out []string

	for _, n := range names {
		if n == "" || uniq[n] {
			continue
		}

		uniq[n] = true
		out = append(out, n)
	}

	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}

		return out[i] < out[j]
	})

	return out
}
