package error

type UnknownEventKindError struct {
	kindName string
}

func (e *UnknownEventKindError) Error() string {
	return "unable to locate event kind for name [" + e.kindName + "]"
}

func (e *UnknownEventKindError) GetKindName() string {
	return e.kindName
}

//--------------------

func NewUnknownEventKindError(kindName string) *UnknownEventKindError {
	return &UnknownEventKindError{
		kindName: kindName,
	}
}
