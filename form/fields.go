// Package form holds the in-memory form document: the ordered field list the
// designer edits, the value map a visitor fills in, and the derived
// statistics the dashboard reads.
package form

import "github.com/stirwin/form-builder/element"

// Fields is a form's ordered list of element instances. Order is the
// rendering and tab order. Editing operations return the updated slice, the
// way the designer replaces its state wholesale on every edit.
type Fields []element.Instance

// Insert places in at index, shifting later fields right. index is clamped
// to the valid range, so len(f) appends.
func (f Fields) Insert(index int, in element.Instance) Fields {
	if index < 0 {
		index = 0
	}
	if index > len(f) {
		index = len(f)
	}
	out := make(Fields, 0, len(f)+1)
	out = append(out, f[:index]...)
	out = append(out, in)
	out = append(out, f[index:]...)
	return out
}

// Remove drops the field with the given id, preserving the relative order of
// the rest. Unknown ids are a no-op.
func (f Fields) Remove(id string) Fields {
	out := make(Fields, 0, len(f))
	for _, in := range f {
		if in.ID != id {
			out = append(out, in)
		}
	}
	return out
}

// Replace overwrites the field with the given id in place, keeping its
// position. Unknown ids are a no-op.
func (f Fields) Replace(id string, in element.Instance) Fields {
	out := make(Fields, len(f))
	copy(out, f)
	for i := range out {
		if out[i].ID == id {
			out[i] = in
			break
		}
	}
	return out
}

// IndexOf returns the position of the field with the given id, or -1.
func (f Fields) IndexOf(id string) int {
	for i, in := range f {
		if in.ID == id {
			return i
		}
	}
	return -1
}

// DropHalf says which half of an existing field a dragged element was
// dropped on.
type DropHalf int

const (
	TopHalf DropHalf = iota
	BottomHalf
)

// DropIndex translates a drop target (the index of the field dropped over
// and the half it was dropped on) into the insertion index: top half means
// insert before that field, bottom half means insert after it.
func DropIndex(overIndex int, half DropHalf) int {
	if half == BottomHalf {
		return overIndex + 1
	}
	return overIndex
}
