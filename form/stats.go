package form

import (
	"strconv"

	"github.com/stirwin/form-builder/element"
)

// Rates are the derived display statistics for a form's counters.
type Rates struct {
	SubmissionRate float64 `json:"submissionRate"`
	BounceRate     float64 `json:"bounceRate"`
}

// DeriveRates computes the submission and bounce percentages from raw
// counters. Computed fresh on every read, never cached.
//
// Rates are not clamped: anomalous counters (submissions > visits) produce a
// rate over 100 and a negative bounce rate, matching the observed behavior.
func DeriveRates(visits, submissions int) Rates {
	submissionRate := 0.0
	if visits > 0 {
		submissionRate = float64(submissions) / float64(visits) * 100
	}
	return Rates{
		SubmissionRate: submissionRate,
		BounceRate:     100 - submissionRate,
	}
}

// QuestionAverage is the mean of the numeric answers one field received.
type QuestionAverage struct {
	FieldID   string  `json:"fieldId"`
	Label     string  `json:"label"`
	Average   float64 `json:"average"`
	Responses int     `json:"responses"`
}

// QuestionAverages reduces submissions into per-question averages for the
// response chart. Number fields always qualify; select fields qualify when
// at least one option is numeric. Missing or non-numeric answers are
// skipped; a question with no numeric answers averages to 0.
func QuestionAverages(fields Fields, submissions []Values) []QuestionAverage {
	averages := []QuestionAverage{}
	for _, in := range fields {
		label, ok := numericQuestion(in)
		if !ok {
			continue
		}

		sum, count := 0.0, 0
		for _, values := range submissions {
			f, err := strconv.ParseFloat(values[in.ID], 64)
			if err != nil {
				continue
			}
			sum += f
			count++
		}

		avg := QuestionAverage{FieldID: in.ID, Label: label, Responses: count}
		if count > 0 {
			avg.Average = sum / float64(count)
		}
		averages = append(averages, avg)
	}
	return averages
}

func numericQuestion(in element.Instance) (label string, ok bool) {
	switch attrs := in.Attributes.(type) {
	case *element.NumberAttributes:
		return attrs.Label, true
	case *element.SelectAttributes:
		for _, opt := range attrs.Options {
			if _, err := strconv.ParseFloat(opt, 64); err == nil {
				return attrs.Label, true
			}
		}
	}
	return "", false
}
