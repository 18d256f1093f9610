package response

// Response is the envelope every successful endpoint answers with.
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func SuccessResponse(data any) Response {
	return Response{Status: "success", Data: data}
}

func ErrorResponseWithDetails(err, details string) ErrorResponse {
	return ErrorResponse{Status: "error", Error: err, Details: details}
}
