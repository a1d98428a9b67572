package api

// ErrorEnvelope wraps every error response in a predictable structured format.
// Success payloads are not enveloped; each operation defines its own body.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes an error with an optional field-level breakdown.
type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldIssue `json:"details,omitempty"`
	TraceID *string      `json:"traceId,omitempty"`
}

// FieldIssue gives field-level or contextual error information.
type FieldIssue struct {
	Field string `json:"field,omitempty"`
	Issue string `json:"issue"`
}

// NewErrorEnvelope constructs an error envelope, copying the details slice so
// later mutation by the caller cannot alter the response.
func NewErrorEnvelope(traceID *string, code, msg string, details []FieldIssue) ErrorEnvelope {
	var clonedDetails []FieldIssue
	if len(details) > 0 {
		clonedDetails = make([]FieldIssue, len(details))
		copy(clonedDetails, details)
	}
	return ErrorEnvelope{
		Error: ErrorBody{
			Code:    code,
			Message: msg,
			Details: clonedDetails,
			TraceID: traceID,
		},
	}
}
