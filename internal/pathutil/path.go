// Package pathutil collects regex-based helpers for OpenAPI path and
// server URL templates.
package pathutil

import "regexp"

// PathParamRegex matches path template parameters like {paramName}.
// It captures the parameter name inside the braces.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// Names extracts the {name} placeholders from a path or server URL
// template, in order.
func Names(path string) []string {
	var names []string
	for _, m := range PathParamRegex.FindAllStringSubmatch(path, -1) {
		names = append(names, m[1])
	}
	return names
}
