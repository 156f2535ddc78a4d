package archive

import (
	"fmt"
	"strings"
)

// EntryNamesLess tells whether nameA should precede nameB in a jar.
func EntryNamesLess(nameA, nameB string) bool {
	diff := index(nameA) - index(nameB)
	if diff == 0 {
		return nameA < nameB
	}
	return diff < 0
}

// Treats trailing * as a prefix match
func patternMatch(pattern, name string) bool {
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(name, strings.TrimSuffix(pattern, "*"))
	}
	return name == pattern
}

var jarOrder = []string{
	"META-INF/",
	ManifestName,
	"META-INF/*",
	"*",
}

func index(name string) int {
	for i, pattern := range jarOrder {
		if patternMatch(pattern, name) {
			return i
		}
	}
	panic(fmt.Errorf("file %q did not match any pattern", name))
}
