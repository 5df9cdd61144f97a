package apierror

const (
	KindValidation = "ValidationError"
	KindDuplicate  = "DuplicateEmail"
	KindNotFound   = "NotFound"
	KindDatabase   = "DatabaseError"
	KindAuth       = "Unauthorized"
	KindInternal   = "InternalError"
)

const (
	CodeRequired      = "required"
	CodeEmpty         = "empty"
	CodeInvalidFormat = "invalid_format"
	CodeOutOfRange    = "out_of_range"
	CodeDuplicate     = "duplicate"
)

type (
	Detail struct {
		Field   string `json:"field,omitempty"`
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	}
	Response struct {
		Error      string   `json:"error"`
		Message    string   `json:"message"`
		Details    []Detail `json:"details,omitempty"`
		StatusCode int      `json:"status_code"`
	}
)

func New(statusCode int, kind, message string, details ...Detail) Response {
	return Response{
		Error:      kind,
		Message:    message,
		Details:    details,
		StatusCode: statusCode,
	}
}
