// Package scenes contains the painters of the demo application.
package scenes

import (
	"fmt"
	"sort"

	"github.com/QuestScreen/simplegl/display"
)

var known = map[string]func() display.Painter{
	"shapes": func() display.Painter { return NewShapes() },
	"cursor": func() display.Painter { return NewCursor() },
}

// Lookup creates the painter with the given name. Case, accents and
// punctuation in name are ignored.
func Lookup(name string) (display.Painter, error) {
	create, ok := known[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return create(), nil
}

// Names returns the names of all scenes in alphabetical order.
func Names() []string {
	ret := make([]string, 0, len(known))
	for name := range known {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}
