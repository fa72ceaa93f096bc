package constvars

const (
	MIMEApplicationJSON = "application/json"
	MIMEOctetStream     = "application/octet-stream"
)

const (
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
	HeaderRetryAfter  = "Retry-After"
)

const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusNoContent = 204

	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusConflict        = 409
	StatusGone            = 410
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)
