package ir

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// Emit serializes program to w, writing definitions in program order.
// Emit does not validate the program: violating one of the IR model's
// invariants (for example, a constant value with an aggregate or void
// type) panics.
func Emit(program *Program, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, def := range program.Defs {
		emitDef(bw, def)
	}
	return bw.Flush()
}

func emitQType(w *bufio.Writer, t *Type, aggr bool) {
	switch t.Kind {
	case Byte:
		w.WriteByte('b')
	case Half:
		w.WriteByte('h')
	case Word:
		w.WriteByte('w')
	case Long:
		w.WriteByte('l')
	case Single:
		w.WriteByte('s')
	case Double:
		w.WriteByte('d')
	case Aggregate:
		if aggr {
			fmt.Fprintf(w, ":%s", t.Name)
		} else {
			w.WriteByte('l')
		}
	case Void:
		// no-op
	}
}

func emitConst(w *bufio.Writer, v Value) {
	switch v.Type.Kind {
	case Byte, Half, Word:
		fmt.Fprintf(w, "%d", v.WVal)
	case Long:
		fmt.Fprintf(w, "%d", v.LVal)
	case Single:
		fmt.Fprintf(w, "s_%f", v.SVal)
	case Double:
		fmt.Fprintf(w, "d_%f", v.DVal)
	default:
		panic("ir: constant value with non-scalar type")
	}
}

func emitValue(w *bufio.Writer, v Value) {
	switch v.Kind {
	case VConst:
		emitConst(w, v)
	case VGlobal:
		fmt.Fprintf(w, "$%s", v.Name)
	case VLabel:
		fmt.Fprintf(w, "@%s", v.Name)
	case VTemporary:
		fmt.Fprintf(w, "%%%s", v.Name)
	}
}

func emitCall(w *bufio.Writer, stmt Stmt) {
	fmt.Fprintf(w, "%s ", stmt.Instr)

	if len(stmt.Args) == 0 {
		panic("ir: call statement with no callee")
	}
	emitValue(w, stmt.Args[0])
	w.WriteByte('(')
	for i, arg := range stmt.Args[1:] {
		if i > 0 {
			w.WriteString(", ")
		}
		emitQType(w, arg.Type, true)
		w.WriteByte(' ')
		emitValue(w, arg)
	}
	w.WriteString(")\n")
}

func emitStmt(w *bufio.Writer, stmt Stmt) {
	switch stmt.Kind {
	case SComment:
		fmt.Fprintf(w, "\t# %s\n", stmt.Comment)
	case SLabel:
		fmt.Fprintf(w, "@%s\n", stmt.Label)
	case SInstr:
		w.WriteByte('\t')
		if stmt.Instr == Call {
			if stmt.Out != nil {
				emitValue(w, *stmt.Out)
				w.WriteString(" =")
				emitQType(w, stmt.Out.Type, true)
				w.WriteByte(' ')
			}
			emitCall(w, stmt)
			return
		}
		if stmt.Out != nil {
			emitValue(w, *stmt.Out)
			w.WriteString(" =")
			emitQType(w, stmt.Out.Type, false)
			w.WriteByte(' ')
		}
		w.WriteString(stmt.Instr)
		if len(stmt.Args) > 0 {
			w.WriteByte(' ')
		}
		for i, arg := range stmt.Args {
			if i > 0 {
				w.WriteString(", ")
			}
			emitValue(w, arg)
		}
		w.WriteByte('\n')
	}
}

func emitTypeDef(w *bufio.Writer, def *Def) {
	if def.TypeBody.Comment != "" {
		fmt.Fprintf(w, "# %s\n", def.TypeBody.Comment)
	}
	fmt.Fprintf(w, "type :%s =", def.Name)
	if def.TypeBody.Align != UndefinedAlign {
		fmt.Fprintf(w, " align %d", def.TypeBody.Align)
	}
	w.WriteString(" {")

	fields := def.TypeBody.Fields
	for i, field := range fields {
		if def.TypeBody.IsUnion {
			w.WriteString(" {")
		}
		if field.Type != nil {
			w.WriteByte(' ')
			emitQType(w, field.Type, true)
		}
		if field.Count != 0 {
			fmt.Fprintf(w, " %d", field.Count)
		}
		if def.TypeBody.IsUnion {
			w.WriteString(" }")
		} else if i != len(fields)-1 {
			w.WriteByte(',')
		}
	}

	w.WriteString(" }\n\n")
}

func emitFunc(w *bufio.Writer, def *Def) {
	if def.Exported {
		w.WriteString("export ")
	}
	fmt.Fprintf(w, "function section \".text.%s\" \"ax\"", def.Name)

	if def.FuncBody.Returns != nil && def.FuncBody.Returns.Kind != Void {
		w.WriteByte(' ')
		emitQType(w, def.FuncBody.Returns, true)
	}
	fmt.Fprintf(w, " $%s(", def.Name)
	for i, param := range def.FuncBody.Params {
		if i > 0 {
			w.WriteString(", ")
		}
		emitQType(w, param.Type, true)
		fmt.Fprintf(w, " %%%s", param.Name)
	}
	w.WriteString(") {\n")

	for _, stmt := range def.FuncBody.Prelude {
		emitStmt(w, stmt)
	}
	for _, stmt := range def.FuncBody.Body {
		emitStmt(w, stmt)
	}

	w.WriteString("}\n\n")
}

// emitDataString writes byte string str as a run of `b "..."` string
// literals interspersed with `b N` escapes for non-printable or
// quote/backslash bytes, terminated by `b 0`.
func emitDataString(w *bufio.Writer, str []byte) {
	quoted := false
	for _, b := range str {
		if !isPrint(b) || b == '"' || b == '\\' {
			if quoted {
				quoted = false
				w.WriteString("\", ")
			}
			fmt.Fprintf(w, "b %d, ", b)
		} else {
			if !quoted {
				quoted = true
				w.WriteString("b \"")
			}
			w.WriteByte(b)
		}
	}
	if quoted {
		w.WriteString("\", b 0")
	} else {
		w.WriteString("b 0")
	}
}

func isPrint(b byte) bool { return b >= 0x20 && b < 0x7f }

// isZeroes reports whether every item in items is all-zero, determining
// the default data section.
func isZeroes(items []DataItem) bool {
	for _, item := range items {
		switch item.Kind {
		case DataZeroed:
			// always zero
		case DataValue:
			switch item.Value.Kind {
			case VConst:
				if item.Value.LVal != 0 || item.Value.WVal != 0 ||
					math.Float32bits(item.Value.SVal) != 0 || math.Float64bits(item.Value.DVal) != 0 {
					return false
				}
			default:
				return false
			}
		case DataString:
			for _, b := range item.Bytes {
				if b != 0 {
					return false
				}
			}
		case DataSymOffset:
			return false
		}
	}
	return true
}

func emitData(w *bufio.Writer, def *Def) {
	if def.Exported {
		w.WriteString("export ")
	}
	w.WriteString("data ")

	switch {
	case def.DataBody.Section != "" && def.DataBody.SecFlags != "":
		fmt.Fprintf(w, "section \"%s\" \"%s\" ", def.DataBody.Section, def.DataBody.SecFlags)
	case def.DataBody.Section != "":
		fmt.Fprintf(w, "section \"%s\" ", def.DataBody.Section)
	case isZeroes(def.DataBody.Items):
		fmt.Fprintf(w, "section \".bss.%s\" ", def.Name)
	default:
		fmt.Fprintf(w, "section \".data.%s\" ", def.Name)
	}
	fmt.Fprintf(w, "$%s = { ", def.Name)

	for i, item := range def.DataBody.Items {
		switch item.Kind {
		case DataValue:
			emitQType(w, item.Value.Type, true)
			w.WriteByte(' ')
			emitValue(w, item.Value)
		case DataZeroed:
			fmt.Fprintf(w, "z %d", item.Zero)
		case DataString:
			emitDataString(w, item.Bytes)
		case DataSymOffset:
			fmt.Fprintf(w, "l $%s + %d", item.Sym, item.Offset)
		}
		if i != len(def.DataBody.Items)-1 {
			w.WriteString(", ")
		} else {
			w.WriteByte(' ')
		}
	}

	w.WriteString("}\n\n")
}

func emitDef(w *bufio.Writer, def *Def) {
	switch def.Kind {
	case DefType:
		emitTypeDef(w, def)
	case DefFunc:
		emitFunc(w, def)
	case DefData:
		emitData(w, def)
	}
}
