package models

import (
	"unicode/utf16"
)

// Text length bounds for analysis requests, counted in UTF-16 code units
const (
	MinTextLength = 1
	MaxTextLength = 1000
)

// Sentiment labels the model is instructed to answer with
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// IsKnownSentiment reports whether s is one of the three labels the prompt asks for
func IsKnownSentiment(s string) bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// AnalyzeRequest represents the body of POST /analyze
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeResult represents the outcome of a sentiment analysis
type AnalyzeResult struct {
	Sentiment string `json:"sentiment"`
}

// ParseAnalyzeRequest builds an AnalyzeRequest from a decoded JSON body.
// The body is taken as a generic value so that type mismatches surface as
// validation errors rather than decode failures.
func ParseAnalyzeRequest(body any) (AnalyzeRequest, ValidationErrors) {
	obj, ok := body.(map[string]any)
	if !ok {
		return AnalyzeRequest{}, ValidationErrors{{
			Field:   "",
			Message: "Expected object, received " + jsonTypeName(body),
		}}
	}

	raw, present := obj["text"]
	if !present {
		return AnalyzeRequest{}, ValidationErrors{{Field: "text", Message: "Required"}}
	}

	text, ok := raw.(string)
	if !ok {
		return AnalyzeRequest{}, ValidationErrors{{
			Field:   "text",
			Message: "Expected string, received " + jsonTypeName(raw),
		}}
	}

	req := AnalyzeRequest{Text: text}
	if errs := req.Validate(); errs.HasErrors() {
		return AnalyzeRequest{}, errs
	}
	return req, nil
}

// Validate validates the analysis request
func (r *AnalyzeRequest) Validate() ValidationErrors {
	var errors ValidationErrors

	length := TextLength(r.Text)
	if length < MinTextLength {
		errors = append(errors, ValidationError{Field: "text", Message: "Text is required"})
	}
	if length > MaxTextLength {
		errors = append(errors, ValidationError{Field: "text", Message: "Text is too long"})
	}

	return errors
}

// TextLength counts s in UTF-16 code units, so a character outside the
// Basic Multilingual Plane (most emoji) counts as two.
func TextLength(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// jsonTypeName names the JSON type of a value produced by encoding/json
func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
