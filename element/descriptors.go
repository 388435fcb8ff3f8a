package element

import (
	"math"
	"strconv"
)

var textDescriptor = Descriptor{
	Type:  TypeText,
	Label: "Text field",
	Icon:  "case-sensitive",
	Construct: func(id string) Instance {
		return Instance{ID: id, Type: TypeText, Attributes: &TextAttributes{
			Label:       "Text field",
			HelperText:  "Helper text",
			PlaceHolder: "Type here...",
		}}
	},
	Validate: func(in Instance, value string) bool {
		if in.Attributes.(*TextAttributes).Required {
			return len(value) > 0
		}
		return true
	},
}

var textAreaDescriptor = Descriptor{
	Type:  TypeTextArea,
	Label: "TextArea field",
	Icon:  "text",
	Construct: func(id string) Instance {
		return Instance{ID: id, Type: TypeTextArea, Attributes: &TextAreaAttributes{
			Label:       "TextArea field",
			HelperText:  "Helper text",
			PlaceHolder: "Type here...",
			Rows:        3,
		}}
	},
	Validate: func(in Instance, value string) bool {
		if in.Attributes.(*TextAreaAttributes).Required {
			return len(value) > 0
		}
		return true
	},
}

var numberDescriptor = Descriptor{
	Type:  TypeNumber,
	Label: "Number field",
	Icon:  "hash",
	Construct: func(id string) Instance {
		return Instance{ID: id, Type: TypeNumber, Attributes: &NumberAttributes{
			Label:       "Number field",
			HelperText:  "Helper text",
			PlaceHolder: "0",
		}}
	},
	Validate: func(in Instance, value string) bool {
		if in.Attributes.(*NumberAttributes).Required {
			// the empty string does not parse, matching NaN semantics
			f, err := strconv.ParseFloat(value, 64)
			return err == nil && !math.IsNaN(f)
		}
		return true
	},
}

var dateDescriptor = Descriptor{
	Type:  TypeDate,
	Label: "Date field",
	Icon:  "calendar-days",
	Construct: func(id string) Instance {
		return Instance{ID: id, Type: TypeDate, Attributes: &DateAttributes{
			Label:      "Date field",
			HelperText: "Pick a date",
		}}
	},
	Validate: func(in Instance, value string) bool {
		if in.Attributes.(*DateAttributes).Required {
			return len(value) > 0
		}
		return true
	},
}

var selectDescriptor = Descriptor{
	Type:  TypeSelect,
	Label: "Select field",
	Icon:  "square-chevron-down",
	Construct: func(id string) Instance {
		return Instance{ID: id, Type: TypeSelect, Attributes: &SelectAttributes{
			Label:       "Select field",
			HelperText:  "Helper text",
			PlaceHolder: "Pick an option",
			Options:     []string{},
		}}
	},
	Validate: func(in Instance, value string) bool {
		if in.Attributes.(*SelectAttributes).Required {
			return len(value) > 0
		}
		return true
	},
}

var checkboxDescriptor = Descriptor{
	Type:  TypeCheckbox,
	Label: "Checkbox field",
	Icon:  "square-check",
	Construct: func(id string) Instance {
		return Instance{ID: id, Type: TypeCheckbox, Attributes: &CheckboxAttributes{
			Label:      "Checkbox field",
			HelperText: "Helper text",
		}}
	},
	Validate: func(in Instance, value string) bool {
		if in.Attributes.(*CheckboxAttributes).Required {
			return value == "true"
		}
		return true
	},
}

var titleDescriptor = Descriptor{
	Type:  TypeTitle,
	Label: "Title field",
	Icon:  "heading-1",
	Construct: func(id string) Instance {
		return Instance{ID: id, Type: TypeTitle, Attributes: &TitleAttributes{
			Title: "Title field",
		}}
	},
	Validate: alwaysValid,
}

var subTitleDescriptor = Descriptor{
	Type:  TypeSubTitle,
	Label: "SubTitle field",
	Icon:  "heading-2",
	Construct: func(id string) Instance {
		return Instance{ID: id, Type: TypeSubTitle, Attributes: &SubTitleAttributes{
			Title: "SubTitle field",
		}}
	},
	Validate: alwaysValid,
}

var paragraphDescriptor = Descriptor{
	Type:  TypeParagraph,
	Label: "Paragraph field",
	Icon:  "pilcrow",
	Construct: func(id string) Instance {
		return Instance{ID: id, Type: TypeParagraph, Attributes: &ParagraphAttributes{
			Text: "Text here",
		}}
	},
	Validate: alwaysValid,
}

var separatorDescriptor = Descriptor{
	Type:  TypeSeparator,
	Label: "Separator field",
	Icon:  "separator-horizontal",
	Construct: func(id string) Instance {
		return Instance{ID: id, Type: TypeSeparator, Attributes: &SeparatorAttributes{}}
	},
	Validate: alwaysValid,
}

var spacerDescriptor = Descriptor{
	Type:  TypeSpacer,
	Label: "Spacer field",
	Icon:  "separator-vertical",
	Construct: func(id string) Instance {
		return Instance{ID: id, Type: TypeSpacer, Attributes: &SpacerAttributes{
			Height: 20,
		}}
	},
	Validate: alwaysValid,
}

// Decorative elements collect no user input.
func alwaysValid(Instance, string) bool { return true }
