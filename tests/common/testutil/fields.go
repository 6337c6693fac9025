//go:build unit || e2e

package testutil

import "strings"

// Field sets key in a JSON-shaped map, or deletes it when value is nil.
// Dotted keys such as "patron.email" walk into nested objects.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		path := strings.Split(key, ".")
		for _, k := range path[:len(path)-1] {
			next, ok := m[k].(map[string]any)
			if !ok {
				next = map[string]any{}
				m[k] = next
			}
			m = next
		}
		last := path[len(path)-1]
		if value == nil {
			delete(m, last)
			return
		}
		m[last] = value
	}
}
