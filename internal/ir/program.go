package ir

// Program is an ordered list of IR definitions. Order is the order the
// emitter writes them in, and callers must preserve it.
type Program struct {
	Defs []*Def
}

// Append adds def to the end of the program.
func (p *Program) Append(def *Def) { p.Defs = append(p.Defs, def) }
