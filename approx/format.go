// File: format.go
// Role: Compact human-readable rendering of a potential's values.

package approx

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlbayes/core"
)

// Compact renders 100·p(x) for every domain value x in canonical order as a
// bracket-enclosed, pipe-delimited string of fixed-width fields
// (8 characters wide, 4 decimals):
//
//	[ 90.0000| 10.0000]
//
// Pure presentation — the format carries no contract beyond readability.
// A nil potential renders as "[]".
func Compact(p *core.Potential) string {
	if p == nil {
		return "[]"
	}

	var b strings.Builder
	b.WriteByte('[')
	first := true
	for it := core.NewInstantiation(p); !it.End(); it.Inc() {
		if !first {
			b.WriteByte('|')
		}
		fmt.Fprintf(&b, "%8.4f", 100*it.Value())
		first = false
	}
	b.WriteByte(']')

	return b.String()
}
