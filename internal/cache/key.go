package cache

import (
	"fmt"
	"sort"
	"strings"
)

// Key builds a cache key from positional arguments. Order is significant:
// Key(1, 2) and Key(2, 1) are different keys.
func Key(parts ...any) string {
	ss := make([]string, len(parts))
	for i, p := range parts {
		ss[i] = fmt.Sprint(p)
	}
	return strings.Join(ss, "|")
}

// NamedKey builds a cache key from named arguments. Names are sorted before
// joining, so equal inputs produce equal keys regardless of map iteration or
// call-site ordering.
func NamedKey(named map[string]any) string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)

	ss := make([]string, len(names))
	for i, name := range names {
		ss[i] = fmt.Sprintf("%s=%v", name, named[name])
	}
	return strings.Join(ss, "|")
}
