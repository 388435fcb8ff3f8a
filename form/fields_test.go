package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stirwin/form-builder/element"
)

func ids(fields Fields) []string {
	out := make([]string, len(fields))
	for i, in := range fields {
		out[i] = in.ID
	}
	return out
}

func threeFields() Fields {
	return Fields{}.
		Insert(0, element.New(element.TypeTitle)).
		Insert(1, element.New(element.TypeText)).
		Insert(2, element.New(element.TypeCheckbox))
}

func TestInsertAtFrontShiftsTheRest(t *testing.T) {
	fields := threeFields()
	in := element.New(element.TypeNumber)

	out := fields.Insert(0, in)

	require.Len(t, out, 4)
	assert.Equal(t, in.ID, out[0].ID)
	assert.Equal(t, ids(fields), ids(out[1:]))
}

func TestInsertAtLengthAppends(t *testing.T) {
	fields := threeFields()
	in := element.New(element.TypeDate)

	out := fields.Insert(len(fields), in)

	require.Len(t, out, 4)
	assert.Equal(t, in.ID, out[3].ID)
}

func TestInsertClampsOutOfRangeIndexes(t *testing.T) {
	fields := threeFields()

	front := fields.Insert(-2, element.New(element.TypeText))
	back := fields.Insert(99, element.New(element.TypeText))

	require.Len(t, front, 4)
	require.Len(t, back, 4)
	assert.Equal(t, ids(fields), ids(front[1:]))
	assert.Equal(t, ids(fields), ids(back[:3]))
}

func TestRemoveMiddlePreservesOrder(t *testing.T) {
	fields := threeFields()

	out := fields.Remove(fields[1].ID)

	require.Len(t, out, 2)
	assert.Equal(t, []string{fields[0].ID, fields[2].ID}, ids(out))
}

func TestRemoveUnknownIdIsNoop(t *testing.T) {
	fields := threeFields()
	out := fields.Remove("nope")
	assert.Equal(t, ids(fields), ids(out))
}

func TestReplaceKeepsPosition(t *testing.T) {
	fields := threeFields()
	edited := fields[1]
	edited.Attributes = &element.TextAttributes{Label: "Renamed", Required: true}

	out := fields.Replace(fields[1].ID, edited)

	require.Len(t, out, 3)
	assert.Equal(t, ids(fields), ids(out))
	assert.Equal(t, "Renamed", out[1].Attributes.(*element.TextAttributes).Label)
	// the original list is untouched
	assert.Equal(t, "Text field", fields[1].Attributes.(*element.TextAttributes).Label)
}

func TestReplaceUnknownIdIsNoop(t *testing.T) {
	fields := threeFields()
	out := fields.Replace("nope", element.New(element.TypeText))
	assert.Equal(t, ids(fields), ids(out))
}

func TestIndexOf(t *testing.T) {
	fields := threeFields()
	assert.Equal(t, 1, fields.IndexOf(fields[1].ID))
	assert.Equal(t, -1, fields.IndexOf("nope"))
}

func TestDropIndex(t *testing.T) {
	assert.Equal(t, 2, DropIndex(2, TopHalf), "top half inserts before the target")
	assert.Equal(t, 3, DropIndex(2, BottomHalf), "bottom half inserts after the target")
}
