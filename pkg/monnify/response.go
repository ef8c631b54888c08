package monnify

import (
	"encoding/json"
	"net/http"

	apperrors "monnifyease/pkg/errors"
)

// Response is a decoded API response. Raw holds the body exactly as received;
// it is guaranteed to be valid JSON.
type Response struct {
	StatusCode int
	Header     http.Header
	Raw        json.RawMessage
}

// Envelope is the wrapper Monnify puts around every response body.
type Envelope[T any] struct {
	RequestSuccessful bool   `json:"requestSuccessful"`
	ResponseMessage   string `json:"responseMessage"`
	ResponseCode      string `json:"responseCode"`
	ResponseBody      T      `json:"responseBody"`
}

// Decode unmarshals the raw body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Raw, v); err != nil {
		return apperrors.Decode("response does not match the expected shape", r.StatusCode, err)
	}
	return nil
}

// Map decodes the body as a JSON object.
func (r *Response) Map() (map[string]any, error) {
	var m map[string]any
	if err := r.Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

// Envelope decodes the envelope, leaving the response body undecoded.
func (r *Response) Envelope() (*Envelope[json.RawMessage], error) {
	return decodeEnvelope[json.RawMessage](r)
}

func decodeEnvelope[T any](r *Response) (*Envelope[T], error) {
	var env Envelope[T]
	if err := r.Decode(&env); err != nil {
		return nil, err
	}
	return &env, nil
}
