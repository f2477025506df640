package apperr

// Application error codes
const (
	CodeInternal        = 5000
	CodeParamInvalid    = 4000
	CodeInvalidCapacity = 4001
	CodeInvalidElement  = 4002
	CodeQueueEmpty      = 4004
	CodeQueueFull       = 4009
)
