package http

const (
	CodeUnknown            = "UNKNOWN"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeBadRequest         = "BAD_REQUEST"
	CodeInvalidPath        = "INVALID_PATH"
	CodePersonIDRequired   = "PERSON_ID_REQUIRED"
	CodeSearchTermRequired = "SEARCH_TERM_REQUIRED"
)
