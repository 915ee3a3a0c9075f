package ast

import (
	"encoding/json"
	"fmt"
)

// Print produces a deterministic JSON representation of a Subunit or any
// single node, for golden snapshot testing. Positions are omitted so output
// is stable across incidental source reformatting.
func Print(node interface{}) string {
	if node == nil {
		return "null"
	}
	data, err := json.MarshalIndent(simplify(node), "", "  ")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}

func simplify(node interface{}) interface{} {
	switch n := node.(type) {
	case nil:
		return nil
	case *Subunit:
		imports := make([]string, len(n.Imports))
		for i, imp := range n.Imports {
			imports[i] = imp.String()
		}
		decls := make([]interface{}, len(n.Decls))
		for i, d := range n.Decls {
			decls[i] = simplify(d)
		}
		return map[string]interface{}{
			"kind":    "subunit",
			"imports": imports,
			"decls":   decls,
		}

	case *GlobalDecl:
		m := map[string]interface{}{
			"kind":     "global",
			"binding":  bindingKindName(n.Kind),
			"name":     n.Name,
			"exported": n.Exported,
			"type":     simplify(n.Type),
			"init":     simplify(n.Init),
		}
		if n.Symbol != nil {
			m["symbol"] = *n.Symbol
		}
		return m

	case *TypeDecl:
		return map[string]interface{}{
			"kind":     "typealias",
			"name":     n.Name,
			"exported": n.Exported,
			"type":     simplify(n.Type),
		}

	case *FuncDecl:
		params := make([]interface{}, len(n.Params))
		for i, p := range n.Params {
			params[i] = map[string]interface{}{"name": p.Name, "type": simplify(p.Type)}
		}
		m := map[string]interface{}{
			"kind":      "func",
			"name":      n.Name,
			"exported":  n.Exported,
			"params":    params,
			"result":    simplify(n.Result),
			"variadism": variadismName(n.Variadism),
			"init":      simplify(n.Init),
		}
		if n.Attrs.Init {
			m["init_attr"] = true
		}
		if n.Attrs.Fini {
			m["fini_attr"] = true
		}
		if n.Attrs.Test {
			m["test_attr"] = true
		}
		if n.Attrs.Noreturn {
			m["noreturn"] = true
		}
		if n.Attrs.Symbol != nil {
			m["symbol"] = *n.Attrs.Symbol
		}
		return m

	case *PrimitiveType:
		return typeEnvelope(n.IsConst, map[string]interface{}{"kind": "primitive", "storage": n.Storage.String()})
	case *PointerType:
		return typeEnvelope(n.IsConst, map[string]interface{}{
			"kind":     "pointer",
			"nullable": n.Nullable,
			"referent": simplify(n.Referent),
		})
	case *FunctionType:
		params := make([]interface{}, len(n.Params))
		for i, p := range n.Params {
			params[i] = map[string]interface{}{"name": p.Name, "type": simplify(p.Type)}
		}
		return typeEnvelope(n.IsConst, map[string]interface{}{
			"kind":      "function",
			"params":    params,
			"result":    simplify(n.Result),
			"variadism": variadismName(n.Variadism),
			"noreturn":  n.Noreturn,
		})
	case *ArrayType:
		return typeEnvelope(n.IsConst, map[string]interface{}{
			"kind":       "array",
			"length":     simplify(n.Length),
			"element":    simplify(n.Element),
			"expandable": n.Expandable,
		})
	case *AliasType:
		return typeEnvelope(n.IsConst, map[string]interface{}{
			"kind": "alias",
			"name": n.Name.String(),
		})
	case *StructType:
		return typeEnvelope(n.IsConst, map[string]interface{}{"kind": "struct"})
	case *UnionType:
		return typeEnvelope(n.IsConst, map[string]interface{}{"kind": "union"})
	case *TaggedUnionType:
		return typeEnvelope(n.IsConst, map[string]interface{}{"kind": "tagged_union"})
	case *EnumType:
		return typeEnvelope(n.IsConst, map[string]interface{}{"kind": "enum"})

	case *IntLit:
		return map[string]interface{}{"kind": "int", "storage": n.Storage, "value": n.Value}
	case *UintLit:
		return map[string]interface{}{"kind": "uint", "storage": n.Storage, "value": n.Value}
	case *FloatLit:
		return map[string]interface{}{"kind": "float", "storage": n.Storage, "value": n.Value}
	case *StringLit:
		return map[string]interface{}{"kind": "string", "value": string(n.Value)}
	case *RuneLit:
		return map[string]interface{}{"kind": "rune", "value": string(n.Value)}
	case *NullLit:
		return map[string]interface{}{"kind": "null"}

	default:
		return fmt.Sprintf("<unknown %T>", n)
	}
}

func typeEnvelope(isConst bool, fields map[string]interface{}) map[string]interface{} {
	if isConst {
		fields["const"] = true
	}
	return fields
}

func bindingKindName(k BindingKind) string {
	switch k {
	case Let:
		return "let"
	case Const:
		return "const"
	case Def:
		return "def"
	default:
		return "unknown"
	}
}

func variadismName(v Variadism) string {
	switch v {
	case VariadicA:
		return "variadic_a"
	case VariadicB:
		return "variadic_b"
	default:
		return "none"
	}
}
