package errors

// ErrorCode identifies a category of application error
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS
	ErrorCode_CONFLICT
	ErrorCode_PERMISSION_DENIED
	ErrorCode_FORBIDDEN
	ErrorCode_UNAUTHENTICATED
	ErrorCode_AUTH_INVALID_TOKEN
	ErrorCode_AUTH_INVALID_CREDENTIALS
	ErrorCode_TASK_INVALID_STATE
	ErrorCode_TASK_NOT_ASSIGNED
	ErrorCode_MEETING_NO_TRANSCRIPT
	ErrorCode_ANALYSIS_IN_PROGRESS
	ErrorCode_STORAGE_FAILED
	ErrorCode_DB_TRANSACTION_FAILED
	ErrorCode_EXTERNAL_API_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                  "UNKNOWN",
	ErrorCode_HTTP_OK:                  "OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:           "ALREADY_EXISTS",
	ErrorCode_CONFLICT:                 "CONFLICT",
	ErrorCode_PERMISSION_DENIED:        "PERMISSION_DENIED",
	ErrorCode_FORBIDDEN:                "FORBIDDEN",
	ErrorCode_UNAUTHENTICATED:          "UNAUTHENTICATED",
	ErrorCode_AUTH_INVALID_TOKEN:       "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_INVALID_CREDENTIALS: "AUTH_INVALID_CREDENTIALS",
	ErrorCode_TASK_INVALID_STATE:       "TASK_INVALID_STATE",
	ErrorCode_TASK_NOT_ASSIGNED:        "TASK_NOT_ASSIGNED",
	ErrorCode_MEETING_NO_TRANSCRIPT:    "MEETING_NO_TRANSCRIPT",
	ErrorCode_ANALYSIS_IN_PROGRESS:     "ANALYSIS_IN_PROGRESS",
	ErrorCode_STORAGE_FAILED:           "STORAGE_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED:    "DB_TRANSACTION_FAILED",
	ErrorCode_EXTERNAL_API_FAILED:      "EXTERNAL_API_FAILED",
}

// String returns the symbolic name for the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
