package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldRunID      = "run_id"
	FieldSource     = "source"
	FieldCustomerID = "customer_id"
	FieldLineNumber = "line_number"
	FieldRejectKind = "reject_kind"
	FieldBatchSize  = "batch_size"
)
