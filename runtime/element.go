// Package runtime bridges the view-registry boundary: element and
// attribute data comes in, ordered typed modifier values go out. The
// rendering protocol itself lives outside this module.
package runtime

import "strings"

// Element is the attribute view of one node received from the
// view-registry boundary.
type Element struct {
	Tag        string
	Attributes map[string]string
}

// ClassNames splits the element's class attribute into individual
// class names.
func (e Element) ClassNames() []string {
	raw, ok := e.Attributes["class"]
	if !ok {
		return nil
	}

	return strings.Fields(raw)
}

// Attr returns an attribute value and whether it was present.
func (e Element) Attr(name string) (string, bool) {
	value, ok := e.Attributes[name]
	return value, ok
}
