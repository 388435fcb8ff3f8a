package element

import (
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// UnmarshalJSON decodes an instance, picking the concrete attribute struct
// from the type tag. An unknown tag is an error: stored content only ever
// contains tags produced by this package.
func (in *Instance) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         string          `json:"id"`
		Type       Type            `json:"type"`
		Attributes json.RawMessage `json:"extraAttributes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "element: decode instance")
	}

	attrs, err := emptyAttributes(raw.Type)
	if err != nil {
		return err
	}
	if len(raw.Attributes) > 0 {
		if err := json.Unmarshal(raw.Attributes, attrs); err != nil {
			return errors.Wrapf(err, "element: decode %s attributes", raw.Type)
		}
	}

	in.ID = raw.ID
	in.Type = raw.Type
	in.Attributes = attrs
	return nil
}
