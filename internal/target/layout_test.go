package target

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLayout(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write layout file: %v", err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	if err := Default.validate(); err != nil {
		t.Fatalf("Default.validate() = %v, want nil", err)
	}
}

func TestLoadOverridesListedFields(t *testing.T) {
	path := writeLayout(t, "pointer: {size: 4, align: 4}\nint: {size: 8, align: 8}\n")

	layout, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if layout.Pointer != (Dims{4, 4}) {
		t.Errorf("Pointer = %+v, want {4 4}", layout.Pointer)
	}
	if layout.Int != (Dims{8, 8}) {
		t.Errorf("Int = %+v, want {8 8}", layout.Int)
	}
	// Unlisted fields keep their defaults.
	if layout.U64 != Default.U64 {
		t.Errorf("U64 = %+v, want %+v", layout.U64, Default.U64)
	}
}

func TestLoadRejectsBadDims(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"zero size", "rune: {size: 0, align: 4}\n"},
		{"zero align", "rune: {size: 4, align: 0}\n"},
		{"size not multiple of align", "str: {size: 10, align: 8}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeLayout(t, tt.contents)); err == nil {
				t.Fatalf("Load() succeeded, want error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("Load() succeeded, want error")
	}
}
