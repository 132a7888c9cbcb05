package payload

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/jellydator/validation"
)

// QueryRequest is a request that is read from URL query parameters.
type QueryRequest interface {
	FromQuery(values url.Values) error
}

type DecodeValidator struct{}

func (dv DecodeValidator) DecodeAndValidateQuery(r *http.Request, object QueryRequest) error {
	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		return fmt.Errorf("parse query parameters: %w", err)
	}
	if err := object.FromQuery(values); err != nil {
		return fmt.Errorf("decoding query parameters: %w", err)
	}
	return dv.validatePayload(object)
}

func (dv DecodeValidator) ValidatePayload(object any) error {
	return dv.validatePayload(object)
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
