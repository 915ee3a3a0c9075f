// Package target describes the machine layout the type store computes
// sizes and alignments against. The default layout models a 64-bit
// target with 8-byte pointers; an alternative layout can be loaded from
// a YAML file.
package target

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Dims is a size/alignment pair in bytes.
type Dims struct {
	Size  int64 `yaml:"size"`
	Align int64 `yaml:"align"`
}

// Layout gives the dimensions of every primitive storage plus pointers.
type Layout struct {
	Pointer Dims `yaml:"pointer"`
	Bool    Dims `yaml:"bool"`
	Char    Dims `yaml:"char"`
	Str     Dims `yaml:"str"`
	Rune    Dims `yaml:"rune"`
	F32     Dims `yaml:"f32"`
	F64     Dims `yaml:"f64"`
	I8      Dims `yaml:"i8"`
	I16     Dims `yaml:"i16"`
	I32     Dims `yaml:"i32"`
	I64     Dims `yaml:"i64"`
	Int     Dims `yaml:"int"`
	U8      Dims `yaml:"u8"`
	U16     Dims `yaml:"u16"`
	U32     Dims `yaml:"u32"`
	U64     Dims `yaml:"u64"`
	Uint    Dims `yaml:"uint"`
	Uintptr Dims `yaml:"uintptr"`
	Size    Dims `yaml:"size"`
}

// Default is a conventional 64-bit layout: 8-byte pointers, 4-byte int,
// and a 24-byte string header (data pointer, length, capacity).
var Default = Layout{
	Pointer: Dims{8, 8},
	Bool:    Dims{1, 1},
	Char:    Dims{1, 1},
	Str:     Dims{24, 8},
	Rune:    Dims{4, 4},
	F32:     Dims{4, 4},
	F64:     Dims{8, 8},
	I8:      Dims{1, 1},
	I16:     Dims{2, 2},
	I32:     Dims{4, 4},
	I64:     Dims{8, 8},
	Int:     Dims{4, 4},
	U8:      Dims{1, 1},
	U16:     Dims{2, 2},
	U32:     Dims{4, 4},
	U64:     Dims{8, 8},
	Uint:    Dims{4, 4},
	Uintptr: Dims{8, 8},
	Size:    Dims{8, 8},
}

// Load reads a layout from a YAML file. Fields absent from the file keep
// their Default values, so a layout file only needs to list what differs.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}

	layout := Default
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := layout.validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

func (l Layout) validate() error {
	for _, d := range []struct {
		name string
		dims Dims
	}{
		{"pointer", l.Pointer}, {"bool", l.Bool}, {"char", l.Char},
		{"str", l.Str}, {"rune", l.Rune}, {"f32", l.F32}, {"f64", l.F64},
		{"i8", l.I8}, {"i16", l.I16}, {"i32", l.I32}, {"i64", l.I64},
		{"int", l.Int}, {"u8", l.U8}, {"u16", l.U16}, {"u32", l.U32},
		{"u64", l.U64}, {"uint", l.Uint}, {"uintptr", l.Uintptr},
		{"size", l.Size},
	} {
		if d.dims.Size <= 0 || d.dims.Align <= 0 {
			return fmt.Errorf("layout field %s: size and align must be positive, got %d/%d",
				d.name, d.dims.Size, d.dims.Align)
		}
		if d.dims.Size%d.dims.Align != 0 {
			return fmt.Errorf("layout field %s: size %d is not a multiple of align %d",
				d.name, d.dims.Size, d.dims.Align)
		}
	}
	return nil
}
