package apimodels

// NonJSONMessage is reported when a successful response body is not JSON.
const NonJSONMessage = "Response received (not JSON format)"

// NonJSONResponse stands in for the parsed body when the generator answers
// with something that is not JSON.
type NonJSONResponse struct {
	Message     string  `json:"message" yaml:"message"`
	RawResponse string  `json:"rawResponse" yaml:"rawResponse"`
	ContentType *string `json:"contentType" yaml:"contentType"`
}

// OutcomeResponse is the JSON view of a submission outcome served to the UI.
type OutcomeResponse struct {
	// One of idle, pending, success, failure
	Status string `json:"status" yaml:"status"`

	// Parsed response body, or a NonJSONResponse
	Response interface{} `json:"response,omitempty" yaml:"response,omitempty"`

	// Raw response text exactly as received
	ResponseText string `json:"responseText,omitempty" yaml:"responseText,omitempty"`

	// User facing error message
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Static troubleshooting hints shown with an error
	Tips []string `json:"tips,omitempty" yaml:"tips,omitempty"`
}

// FieldUpdate is the body of a single field change.
type FieldUpdate struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
