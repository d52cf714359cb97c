package error

type InvalidArgumentError struct {
	message string
}

func (e *InvalidArgumentError) Error() string {
	return e.message
}

//--------------------

func NewInvalidArgumentError(message string) *InvalidArgumentError {
	return &InvalidArgumentError{
		message: message,
	}
}
