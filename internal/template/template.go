// Package template resolves #{name} placeholders in configured command
// templates against caller-supplied key/value parameters.
package template

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches #{name} with \w+ names.
var placeholderPattern = regexp.MustCompile(`#\{(\w+)\}`)

// Substitute resolves every placeholder in template against params.
// Resolution is total: any placeholder without a matching parameter fails,
// and the caller observes no partial replacement.
func Substitute(template string, params map[string]string) (string, error) {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	for _, m := range matches {
		if _, ok := params[m[1]]; !ok {
			return "", fmt.Errorf("Required parameter not found: %s", m[1])
		}
	}

	result := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		return params[name]
	})
	return result, nil
}

// ParseKeyVal splits a KEY=VALUE argument on the first '='. The value may
// itself contain '=' characters.
func ParseKeyVal(s string) (string, string, error) {
	pos := strings.Index(s, "=")
	if pos < 0 {
		return "", "", fmt.Errorf("Invalid KEY=value format: %s", s)
	}
	return s[:pos], s[pos+1:], nil
}

// ParseParams converts repeated KEY=VALUE arguments into a parameter map.
// Later duplicates overwrite earlier ones.
func ParseParams(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, err := ParseKeyVal(pair)
		if err != nil {
			return nil, err
		}
		params[key] = value
	}
	return params, nil
}
