package form

import (
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/stirwin/form-builder/log"
)

// Serialize encodes a field list for storage. Deserialize is its exact
// inverse for any list produced through the element registry.
func Serialize(fields Fields) (string, error) {
	if fields == nil {
		fields = Fields{}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return "", errors.Wrap(err, "form: serialize fields")
	}
	return string(data), nil
}

// Deserialize decodes a stored field list.
func Deserialize(content string) (Fields, error) {
	fields := Fields{}
	if err := json.Unmarshal([]byte(content), &fields); err != nil {
		return nil, errors.Wrap(err, "form: deserialize fields")
	}
	return fields, nil
}

// DeserializeContent decodes stored form content, degrading malformed or
// empty text to an empty field list so the surrounding page stays
// renderable. The parse failure is logged, never propagated.
func DeserializeContent(content string) Fields {
	if content == "" {
		return Fields{}
	}
	fields, err := Deserialize(content)
	if err != nil {
		log.Warnf("form.content.parse: %s", err)
		return Fields{}
	}
	return fields
}
