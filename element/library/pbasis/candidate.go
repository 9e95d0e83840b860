package pbasis

// Candidate is one monomial of a Table viewed across all derivative
// keys. DOF functionals evaluate against candidates: point values,
// directional derivatives and second derivatives are all lookups into
// the same monomial index.
type Candidate struct {
	tab *Table
	m   int
}

// Index returns the monomial index of the candidate within the table.
func (c Candidate) Index() int { return c.m }

// At returns the candidate's function for the given derivative key.
func (c Candidate) At(key Key) Func { return c.tab.funcs[key][c.m] }

// Diff returns the mixed partial along the given axis tuple; Diff()
// is the function itself.
func (c Candidate) Diff(axes ...int) Func { return c.At(KeyOf(axes...)) }

// Eval evaluates the candidate at a 2D point.
func (c Candidate) Eval(x, y float64) float64 {
	return c.At(KeyOf())(x, y, 0)
}

// Dx and Dy evaluate the first partials at a 2D point.
func (c Candidate) Dx(x, y float64) float64 { return c.Diff(0)(x, y, 0) }
func (c Candidate) Dy(x, y float64) float64 { return c.Diff(1)(x, y, 0) }

// Dxx, Dxy and Dyy evaluate the second partials at a 2D point.
func (c Candidate) Dxx(x, y float64) float64 { return c.Diff(0, 0)(x, y, 0) }
func (c Candidate) Dxy(x, y float64) float64 { return c.Diff(0, 1)(x, y, 0) }
func (c Candidate) Dyy(x, y float64) float64 { return c.Diff(1, 1)(x, y, 0) }
