package response

// Business status codes. They mirror the familiar HTTP numbers but
// travel inside the envelope.
const (
	CodeOK            = 0
	CodeBadRequest    = 400
	CodeUnauthorized  = 401
	CodeForbidden     = 403
	CodeNotFound      = 404
	CodeConflict      = 409
	CodeAccountLocked = 423
	CodeInternal      = 500
)
