package form

// Status is the state of the most recent submission.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Outcome is the result of one submission. Response holds the parsed body
// (or apimodels.NonJSONResponse) and RawText the body as received.
type Outcome struct {
	Status   Status
	Response interface{}
	RawText  string
	Error    string
}

// Success builds a successful outcome.
func Success(response interface{}, rawText string) Outcome {
	return Outcome{Status: StatusSuccess, Response: response, RawText: rawText}
}

// Failure builds a failed outcome carrying a user facing message.
func Failure(message string) Outcome {
	return Outcome{Status: StatusFailure, Error: message}
}

// Pending reports whether a submission is in flight.
func (o Outcome) Pending() bool {
	return o.Status == StatusPending
}

// Tips are shown next to every failure.
var Tips = []string{
	"Check if the API endpoint is accessible",
	"Verify your internet connection",
	"This might be a CORS issue - try using a CORS proxy or contact the API provider",
	"Check the diagnostic log for more detailed error information",
}
