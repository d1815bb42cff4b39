// File: instantiation.go
// Role: Cursor over a potential's domain in canonical raw order.

package core

// Instantiation iterates over every combination of variable values of a
// potential, in canonical raw order (axis 0 varies fastest).
//
// Usage:
//
//	for it := core.NewInstantiation(p); !it.End(); it.Inc() {
//	    _ = it.Value() // entry at the current combination
//	    _ = it.Val(0)  // current value of the first variable
//	}
//
// An Instantiation reads the live storage of its potential; it is not
// safe to share one potential across goroutines with concurrent writers.
type Instantiation struct {
	vars []*Variable
	vals []int
	pos  int
	end  bool
	data []float64
}

// NewInstantiation returns a cursor positioned at the first combination of
// p's domain. A nil potential yields a cursor that is already at End.
func NewInstantiation(p *Potential) *Instantiation {
	if p == nil {
		return &Instantiation{end: true}
	}
	it := &Instantiation{
		vars: p.vars,
		vals: make([]int, len(p.vars)),
		data: p.data,
	}
	it.First()

	return it
}

// First rewinds the cursor to the initial combination (all values zero).
func (it *Instantiation) First() {
	for i := range it.vals {
		it.vals[i] = 0
	}
	it.pos = 0
	it.end = len(it.data) == 0
}

// End reports whether the cursor has moved past the last combination.
func (it *Instantiation) End() bool { return it.end }

// Inc advances the cursor to the next combination in canonical order.
// Calling Inc at End is a no-op.
func (it *Instantiation) Inc() {
	if it.end {
		return
	}
	it.pos++
	if it.pos >= len(it.data) {
		it.end = true
		return
	}
	// Ripple-carry increment over the value digits, axis 0 first.
	for k := 0; ; k++ {
		it.vals[k]++
		if it.vals[k] < it.vars[k].size {
			break
		}
		it.vals[k] = 0
	}
}

// Val returns the current value of the variable at axis i.
// The caller must ensure 0 <= i < the number of variables.
func (it *Instantiation) Val(i int) int { return it.vals[i] }

// Pos returns the raw storage offset of the current combination.
func (it *Instantiation) Pos() int { return it.pos }

// Value returns the table entry at the current combination, or 0 at End.
func (it *Instantiation) Value() float64 {
	if it.end {
		return 0
	}

	return it.data[it.pos]
}
