package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPanicsOnUnknownType(t *testing.T) {
	require.Panics(t, func() {
		Get(Type("BogusField"))
	})
}

func TestGetCoversEveryType(t *testing.T) {
	for _, typ := range Types {
		d := Get(typ)
		assert.Equal(t, typ, d.Type)
		assert.NotNil(t, d.Construct, "%s has no constructor", typ)
		assert.NotNil(t, d.Validate, "%s has no validator", typ)
		assert.NotEmpty(t, d.Label, "%s has no palette label", typ)
	}
}

func TestNewAssignsFreshIDs(t *testing.T) {
	a := New(TypeText)
	b := New(TypeText)

	assert.Equal(t, TypeText, a.Type)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestConstructDefaults(t *testing.T) {
	in := New(TypeText)
	attrs := in.Attributes.(*TextAttributes)
	assert.Equal(t, "Text field", attrs.Label)
	assert.Equal(t, "Helper text", attrs.HelperText)
	assert.False(t, attrs.Required)
	assert.Equal(t, "Type here...", attrs.PlaceHolder)

	area := New(TypeTextArea).Attributes.(*TextAreaAttributes)
	assert.Equal(t, 3, area.Rows)

	spacer := New(TypeSpacer).Attributes.(*SpacerAttributes)
	assert.Equal(t, 20, spacer.Height)

	sel := New(TypeSelect).Attributes.(*SelectAttributes)
	assert.Empty(t, sel.Options)
}

// setRequired flips the required flag on any input-bearing instance; it is a
// no-op for decorative types.
func setRequired(in Instance, required bool) Instance {
	switch attrs := in.Attributes.(type) {
	case *TextAttributes:
		attrs.Required = required
	case *TextAreaAttributes:
		attrs.Required = required
	case *NumberAttributes:
		attrs.Required = required
	case *DateAttributes:
		attrs.Required = required
	case *SelectAttributes:
		attrs.Required = required
	case *CheckboxAttributes:
		attrs.Required = required
	}
	return in
}

func TestValidateIsTotal(t *testing.T) {
	values := []string{"", "x", "true", "false", "12", "12.5", "abc", "NaN", " "}

	for _, typ := range Types {
		for _, required := range []bool{false, true} {
			in := setRequired(New(typ), required)
			for _, value := range values {
				assert.NotPanics(t, func() {
					Get(typ).Validate(in, value)
				}, "validate(%s, %q) required=%v", typ, value, required)
			}
		}
	}
}

func TestValidateOptionalAcceptsAnything(t *testing.T) {
	for _, typ := range Types {
		in := setRequired(New(typ), false)
		assert.True(t, Get(typ).Validate(in, ""), "optional %s rejected empty value", typ)
		assert.True(t, Get(typ).Validate(in, "whatever"), "optional %s rejected a value", typ)
	}
}

func TestValidateRequiredTextInputs(t *testing.T) {
	for _, typ := range []Type{TypeText, TypeTextArea, TypeSelect, TypeDate} {
		in := setRequired(New(typ), true)
		assert.False(t, Get(typ).Validate(in, ""), "required %s accepted empty value", typ)
		assert.True(t, Get(typ).Validate(in, "x"), "required %s rejected a value", typ)
	}
}

func TestValidateRequiredCheckbox(t *testing.T) {
	in := setRequired(New(TypeCheckbox), true)
	validate := Get(TypeCheckbox).Validate

	assert.True(t, validate(in, "true"))
	assert.False(t, validate(in, "false"))
	assert.False(t, validate(in, ""))
	assert.False(t, validate(in, "TRUE"), "checkbox comparison is an exact string match")
}

func TestValidateRequiredNumber(t *testing.T) {
	in := setRequired(New(TypeNumber), true)
	validate := Get(TypeNumber).Validate

	assert.True(t, validate(in, "12"))
	assert.True(t, validate(in, "-3.5"))
	assert.False(t, validate(in, ""), "empty string does not parse to a number")
	assert.False(t, validate(in, "abc"))
	assert.False(t, validate(in, "NaN"))
}

func TestValidateDecorativeAlwaysTrue(t *testing.T) {
	for _, typ := range []Type{TypeTitle, TypeSubTitle, TypeParagraph, TypeSeparator, TypeSpacer} {
		in := New(typ)
		validate := Get(typ).Validate
		assert.True(t, validate(in, ""))
		assert.True(t, validate(in, "anything"))
	}
}
