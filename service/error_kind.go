package service

// ErrorKind enumerates the ways a checkout submission can fail
type ErrorKind int

const (
	// InvalidAddress - a required shipping address field is empty
	InvalidAddress ErrorKind = iota

	// MissingCredential - no bearer token in client storage
	MissingCredential

	// Network - the backend could not be reached
	Network

	// MalformedResponse - the response body is not JSON
	MalformedResponse

	// IncompleteResponse - a success status without the required fields
	IncompleteResponse

	// HTTPStatus - a non-success status from the backend
	HTTPStatus
)

var kindVals = [...]string{
	"invalid-address",
	"missing-credential",
	"network",
	"malformed-response",
	"incomplete-response",
	"http-status",
}

// String representation of `ErrorKind`
func (k ErrorKind) String() string {
	return kindVals[k]
}
