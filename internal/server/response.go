package server

// Response is the envelope every enveloped endpoint returns:
// {success, data?, error?}.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody carries the status code and a client safe message.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// OK wraps data in a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail builds an error envelope.
func Fail(statusCode int, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorBody{
			StatusCode: statusCode,
			Message:    message,
		},
	}
}
