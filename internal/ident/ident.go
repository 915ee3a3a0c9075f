// Package ident implements the compiler's dotted identifier model: a
// (parent, name) pair where parent is either absent or another identifier
// owned exclusively by its child.
package ident

import "strings"

// Ident is a single component of a dotted name together with a link to its
// owning parent. The zero value is not a valid Ident; use New or Child.
//
// Ident is immutable once constructed: there is no way to mutate Name or
// Parent after New/Child returns.
type Ident struct {
	parent *Ident
	name   string
}

// New creates a root identifier with no parent.
func New(name string) *Ident {
	return &Ident{name: name}
}

// Child creates an identifier owned by parent.
func Child(parent *Ident, name string) *Ident {
	return &Ident{parent: parent, name: name}
}

// Name returns this identifier's own (non-dotted) name component.
func (i *Ident) Name() string {
	if i == nil {
		return ""
	}
	return i.name
}

// Parent returns the owning identifier, or nil if i is a root.
func (i *Ident) Parent() *Ident {
	if i == nil {
		return nil
	}
	return i.parent
}

// Parts returns the dotted path components, outermost first.
func (i *Ident) Parts() []string {
	if i == nil {
		return nil
	}
	var parts []string
	for cur := i; cur != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}
	// parts was built innermost-first; reverse in place.
	for l, r := 0, len(parts)-1; l < r; l, r = l+1, r-1 {
		parts[l], parts[r] = parts[r], parts[l]
	}
	return parts
}

// String flattens the identifier to text using "::" between components.
func (i *Ident) String() string {
	if i == nil {
		return ""
	}
	return strings.Join(i.Parts(), "::")
}

// Equal reports whether two identifiers have character-for-character equal
// dotted paths. Two distinct *Ident values with the same path are equal;
// identity is not required (unlike interned types in internal/types).
func Equal(a, b *Ident) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.String() == b.String()
}

// Parse splits a "::"-separated dotted path into an Ident chain, the
// leftmost name becoming the outermost parent. Parse("") returns nil.
func Parse(path string) *Ident {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, "::")
	var cur *Ident
	for _, p := range parts {
		if cur == nil {
			cur = New(p)
		} else {
			cur = Child(cur, p)
		}
	}
	return cur
}
