package practicum

import (
	"encoding/json"

	"homeworkbot/internal/domain"
)

// parseReport validates the response body against the expected envelope:
// an object with a "homeworks" array and an integer "current_date".
// Validation is strict: a missing or mistyped current_date fails the whole
// response even when the homework list is usable.
func parseReport(body []byte) (*domain.StatusReport, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		if !json.Valid(body) {
			return nil, &MalformedResponseError{Err: err}
		}
		// Valid JSON that failed to decode into a map: the body is an
		// array, number, string or null instead of an object.
		return nil, &ShapeError{Kind: ShapeNotObject}
	}
	if envelope == nil {
		// A literal JSON null decodes into a nil map without error.
		return nil, &ShapeError{Kind: ShapeNotObject}
	}

	rawHomeworks, ok := envelope["homeworks"]
	if !ok {
		return nil, &ShapeError{Kind: ShapeMissingField, Field: "homeworks"}
	}
	var homeworks []domain.Homework
	if err := json.Unmarshal(rawHomeworks, &homeworks); err != nil {
		return nil, &ShapeError{Kind: ShapeWrongType, Field: "homeworks"}
	}

	rawDate, ok := envelope["current_date"]
	if !ok {
		return nil, &ShapeError{Kind: ShapeMissingField, Field: "current_date"}
	}
	var currentDate int64
	if err := json.Unmarshal(rawDate, &currentDate); err != nil {
		return nil, &ShapeError{Kind: ShapeWrongType, Field: "current_date"}
	}

	return &domain.StatusReport{
		Homeworks:   homeworks,
		CurrentDate: currentDate,
	}, nil
}
