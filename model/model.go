package model

import (
	"time"

	"github.com/stirwin/form-builder/form"
)

type Form struct {
	ID          int       `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Published   bool      `json:"published"`
	ShareURL    string    `json:"shareURL,omitempty"`
	Visits      int       `json:"visits"`
	Submissions int       `json:"submissions"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`

	// Fields is the deserialized form content; the serialized text lives in
	// the content column and never crosses the API raw.
	Fields form.Fields `json:"fields,omitempty"`
}

type Submission struct {
	ID        int         `json:"id"`
	Values    form.Values `json:"values"`
	CreatedAt time.Time   `json:"createdAt"`
}
