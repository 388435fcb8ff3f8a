package element

import "fmt"

// Attributes is the tagged-union side of an Instance: each element type
// carries its own concretely-typed attribute struct. The marker method keeps
// the set closed to this package.
type Attributes interface {
	attributes()
}

// TextAttributes configures a single-line text input.
type TextAttributes struct {
	Label       string `json:"label"`
	HelperText  string `json:"helperText"`
	Required    bool   `json:"required"`
	PlaceHolder string `json:"placeHolder"`
}

// TextAreaAttributes configures a multi-line text input.
type TextAreaAttributes struct {
	Label       string `json:"label"`
	HelperText  string `json:"helperText"`
	Required    bool   `json:"required"`
	PlaceHolder string `json:"placeHolder"`
	Rows        int    `json:"rows"`
}

// NumberAttributes configures a numeric input.
type NumberAttributes struct {
	Label       string `json:"label"`
	HelperText  string `json:"helperText"`
	Required    bool   `json:"required"`
	PlaceHolder string `json:"placeHolder"`
}

// DateAttributes configures a date picker. The picked value is carried as
// opaque text.
type DateAttributes struct {
	Label      string `json:"label"`
	HelperText string `json:"helperText"`
	Required   bool   `json:"required"`
}

// SelectAttributes configures a single-choice dropdown.
type SelectAttributes struct {
	Label       string   `json:"label"`
	HelperText  string   `json:"helperText"`
	Required    bool     `json:"required"`
	PlaceHolder string   `json:"placeHolder"`
	Options     []string `json:"options"`
}

// CheckboxAttributes configures a checkbox. The submitted value is the
// string "true" or "false".
type CheckboxAttributes struct {
	Label      string `json:"label"`
	HelperText string `json:"helperText"`
	Required   bool   `json:"required"`
}

// TitleAttributes configures a decorative title row.
type TitleAttributes struct {
	Title string `json:"title"`
}

// SubTitleAttributes configures a decorative subtitle row.
type SubTitleAttributes struct {
	Title string `json:"title"`
}

// ParagraphAttributes configures a decorative paragraph of static text.
type ParagraphAttributes struct {
	Text string `json:"text"`
}

// SeparatorAttributes configures a decorative horizontal rule. It has no
// editable properties.
type SeparatorAttributes struct{}

// SpacerAttributes configures a decorative vertical gap, in pixels.
type SpacerAttributes struct {
	Height int `json:"height"`
}

func (*TextAttributes) attributes()      {}
func (*TextAreaAttributes) attributes()  {}
func (*NumberAttributes) attributes()    {}
func (*DateAttributes) attributes()      {}
func (*SelectAttributes) attributes()    {}
func (*CheckboxAttributes) attributes()  {}
func (*TitleAttributes) attributes()     {}
func (*SubTitleAttributes) attributes()  {}
func (*ParagraphAttributes) attributes() {}
func (*SeparatorAttributes) attributes() {}
func (*SpacerAttributes) attributes()    {}

// emptyAttributes returns a zero attribute struct of the right concrete type
// for t, ready to be decoded into.
func emptyAttributes(t Type) (Attributes, error) {
	switch t {
	case TypeText:
		return &TextAttributes{}, nil
	case TypeTitle:
		return &TitleAttributes{}, nil
	case TypeSubTitle:
		return &SubTitleAttributes{}, nil
	case TypeParagraph:
		return &ParagraphAttributes{}, nil
	case TypeSeparator:
		return &SeparatorAttributes{}, nil
	case TypeSpacer:
		return &SpacerAttributes{}, nil
	case TypeNumber:
		return &NumberAttributes{}, nil
	case TypeTextArea:
		return &TextAreaAttributes{}, nil
	case TypeDate:
		return &DateAttributes{}, nil
	case TypeSelect:
		return &SelectAttributes{}, nil
	case TypeCheckbox:
		return &CheckboxAttributes{}, nil
	default:
		return nil, fmt.Errorf("element: unknown type %q", t)
	}
}
