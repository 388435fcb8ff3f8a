package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stirwin/form-builder/element"
)

func requiredText() element.Instance {
	in := element.New(element.TypeText)
	in.Attributes.(*element.TextAttributes).Required = true
	return in
}

func TestValidateAllReportsOnlyFailingFields(t *testing.T) {
	text := requiredText()
	checkbox := element.New(element.TypeCheckbox) // optional
	fields := Fields{}.Insert(0, text).Insert(1, checkbox)

	invalid := ValidateAll(fields, Values{})
	assert.Equal(t, []string{text.ID}, invalid)

	invalid = ValidateAll(fields, Values{text.ID: "hello"})
	assert.Empty(t, invalid)
}

func TestValidateAllWalksFieldsInOrder(t *testing.T) {
	first := requiredText()
	second := requiredText()
	fields := Fields{}.Insert(0, first).Insert(1, second)

	invalid := ValidateAll(fields, Values{})
	assert.Equal(t, []string{first.ID, second.ID}, invalid)
}

func TestValidateAllEmptyFormAlwaysPasses(t *testing.T) {
	assert.Empty(t, ValidateAll(Fields{}, Values{"stray": "value"}))
}

// A required text field plus an optional checkbox, filled in the way the
// public page does it: untouched fields submit the empty string.
func TestSubmissionScenario(t *testing.T) {
	text := requiredText()
	checkbox := element.New(element.TypeCheckbox)
	fields := Fields{}.Insert(0, text).Insert(1, checkbox)

	values := Values{text.ID: "", checkbox.ID: ""}
	invalid := ValidateAll(fields, values)
	require.Equal(t, []string{text.ID}, invalid)

	values[text.ID] = "Jane"
	require.Empty(t, ValidateAll(fields, values))

	content, err := values.Serialize()
	require.NoError(t, err)
	assert.Equal(t, Values{text.ID: "Jane", checkbox.ID: ""}, ParseValues(content))
}

func TestMergeValuesPatchWins(t *testing.T) {
	stored := Values{"a": "1", "b": "2"}
	patch := Values{"b": "20", "c": "30"}

	merged := MergeValues(stored, patch)

	assert.Equal(t, Values{"a": "1", "b": "20", "c": "30"}, merged)
	// inputs untouched
	assert.Equal(t, Values{"a": "1", "b": "2"}, stored)
}

func TestMergeValuesIsIdempotent(t *testing.T) {
	stored := Values{"a": "1", "formValues": "junk"}
	patch := Values{"a": "2", "b": "3"}

	once := MergeValues(stored, patch)
	twice := MergeValues(once, patch)

	assert.Equal(t, once, twice)
}

func TestMergeValuesStripsBookkeepingKeys(t *testing.T) {
	stored := Values{"a": "1", "formValues": "junk", "totals": "junk"}

	merged := MergeValues(stored, Values{"totals": "more junk"})

	assert.Equal(t, Values{"a": "1"}, merged)
}

func TestParseValuesDegradesToEmpty(t *testing.T) {
	assert.Empty(t, ParseValues(""))
	assert.Empty(t, ParseValues("not json"))
	assert.Empty(t, ParseValues(`["a","list"]`))
}

func TestParseValuesOldFormatLeftovers(t *testing.T) {
	// old records wrapped values in bookkeeping sub-keys and stored numbers raw
	content := `{
		"field-1": "hello",
		"field-2": 4,
		"field-3": true,
		"field-4": null,
		"formValues": {"field-1": "stale"},
		"totals": {"q1": 3.5}
	}`

	values := ParseValues(content)

	assert.Equal(t, Values{
		"field-1": "hello",
		"field-2": "4",
		"field-3": "true",
		"field-4": "",
	}, values)
}
