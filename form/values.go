package form

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/stirwin/form-builder/element"
	"github.com/stirwin/form-builder/log"
)

// Values maps a field instance id to the text value a visitor entered.
// Values are keyed by instance id, not label, so renaming a field never
// invalidates stored answers.
type Values map[string]string

// An older storage format wrapped values and computed averages in these
// sub-keys. They must never survive a merge back into storage.
var bookkeepingKeys = []string{"formValues", "totals"}

// ValidateAll checks the current snapshot of values against every field in
// order and returns the ids that failed, empty when the submission may
// proceed. Fields never touched validate against the empty string.
func ValidateAll(fields Fields, values Values) []string {
	invalid := []string{}
	for _, in := range fields {
		if !element.Get(in.Type).Validate(in, values[in.ID]) {
			invalid = append(invalid, in.ID)
		}
	}
	return invalid
}

// MergeValues overlays patch on top of stored (patch keys win) and strips
// bookkeeping sub-keys leaked by the old storage format. Applying the same
// patch twice yields the same result as applying it once.
func MergeValues(stored, patch Values) Values {
	merged := make(Values, len(stored)+len(patch))
	for k, v := range stored {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	for _, k := range bookkeepingKeys {
		delete(merged, k)
	}
	return merged
}

// Serialize encodes values for storage.
func (v Values) Serialize() (string, error) {
	if v == nil {
		v = Values{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "form: serialize values")
	}
	return string(data), nil
}

// ParseValues decodes one submission's stored values, degrading a malformed
// record to an empty map with a logged diagnostic. Parsing is per record: a
// corrupt submission never stops siblings from rendering.
//
// Older records carry non-string leftovers (nested bookkeeping objects,
// numeric totals); scalars are coerced to text, structured values dropped.
func ParseValues(content string) Values {
	values := Values{}
	if content == "" {
		return values
	}

	raw := map[string]any{}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		log.Warnf("form.values.parse: %s", err)
		return values
	}

	for k, v := range raw {
		switch v := v.(type) {
		case string:
			values[k] = v
		case float64:
			values[k] = fmt.Sprintf("%v", v)
		case bool:
			values[k] = fmt.Sprintf("%v", v)
		case nil:
			values[k] = ""
		}
	}
	for _, k := range bookkeepingKeys {
		delete(values, k)
	}
	return values
}
