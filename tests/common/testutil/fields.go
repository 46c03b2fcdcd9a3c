//go:build unit || e2e

package testutil

import "strings"

// Field sets key to value, or drops it when value is nil. A dotted key such as
// "filter.minPrice" addresses a nested object, which is created when missing.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		path := strings.Split(key, ".")
		for _, part := range path[:len(path)-1] {
			next, ok := m[part].(map[string]any)
			if !ok {
				if value == nil {
					return
				}
				next = map[string]any{}
				m[part] = next
			}
			m = next
		}

		leaf := path[len(path)-1]
		if value == nil {
			delete(m, leaf)
			return
		}
		m[leaf] = value
	}
}
