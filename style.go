package svg

import "strings"

// splitStyle breaks a style attribute into its property/value pairs.
// Declarations without a colon are skipped.
func splitStyle(style string) map[string]string {
	properties := make(map[string]string)

	for _, decl := range strings.Split(style, ";") {
		key, val, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		properties[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}

	return properties
}
