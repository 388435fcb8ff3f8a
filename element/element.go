// Package element defines the closed palette of form field types and the
// per-type behavior shared by the designer and the public fill-in flow.
package element

import (
	"fmt"

	"github.com/gofrs/uuid"
)

// Type identifies one kind of form element. The set is fixed at build time.
type Type string

const (
	TypeText      Type = "TextField"
	TypeTitle     Type = "TitleField"
	TypeSubTitle  Type = "SubTitleField"
	TypeParagraph Type = "ParagraphField"
	TypeSeparator Type = "SeparatorField"
	TypeSpacer    Type = "SpacerField"
	TypeNumber    Type = "NumberField"
	TypeTextArea  Type = "TextAreaField"
	TypeDate      Type = "DateField"
	TypeSelect    Type = "SelectField"
	TypeCheckbox  Type = "CheckboxField"
)

// Types lists every element type in palette order.
var Types = []Type{
	TypeText,
	TypeTitle,
	TypeSubTitle,
	TypeParagraph,
	TypeSeparator,
	TypeSpacer,
	TypeNumber,
	TypeTextArea,
	TypeDate,
	TypeSelect,
	TypeCheckbox,
}

// Instance is one concrete element placed in a form. Attributes is the
// concrete attribute struct for the instance's type.
type Instance struct {
	ID         string     `json:"id"`
	Type       Type       `json:"type"`
	Attributes Attributes `json:"extraAttributes"`
}

// Descriptor bundles the behavior of one element type.
//
// Validate is a pure predicate over the instance and the raw text value a
// visitor typed. It runs both in the designer preview and before a submission
// is persisted, so it must not mutate the instance or touch any shared state.
type Descriptor struct {
	Type      Type
	Label     string // palette button label
	Icon      string // palette button icon name
	Construct func(id string) Instance
	Validate  func(in Instance, value string) bool
}

// Get resolves the descriptor for a type. Types only ever come from this
// package, so an unknown type is a programming error and panics.
func Get(t Type) Descriptor {
	switch t {
	case TypeText:
		return textDescriptor
	case TypeTitle:
		return titleDescriptor
	case TypeSubTitle:
		return subTitleDescriptor
	case TypeParagraph:
		return paragraphDescriptor
	case TypeSeparator:
		return separatorDescriptor
	case TypeSpacer:
		return spacerDescriptor
	case TypeNumber:
		return numberDescriptor
	case TypeTextArea:
		return textAreaDescriptor
	case TypeDate:
		return dateDescriptor
	case TypeSelect:
		return selectDescriptor
	case TypeCheckbox:
		return checkboxDescriptor
	default:
		panic(fmt.Sprintf("element: unknown type %q", t))
	}
}

// New constructs a fresh instance of the given type with a new id and the
// type's default attributes.
func New(t Type) Instance {
	id := uuid.Must(uuid.NewV4()).String()
	return Get(t).Construct(id)
}
