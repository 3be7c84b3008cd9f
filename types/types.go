package types

import "fmt"

type intName struct {
	i uint32
	s string
}

// stringName looks i up in names, falling back to formatting the raw
// value with fallback. Unknown values are expected in a
// forward-extensible format and must still render.
func stringName(i uint32, names []intName, fallback string) string {
	for _, n := range names {
		if n.i == i {
			return n.s
		}
	}
	return fmt.Sprintf(fallback, i)
}
