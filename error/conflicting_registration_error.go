package error

import (
	"fmt"
	"reflect"
)

type ConflictingRegistrationError struct {
	kindName       string
	registeredType reflect.Type
	requestedType  reflect.Type
}

func (e *ConflictingRegistrationError) Error() string {
	return fmt.Sprintf(
		"event kind %s is already registered with capability %s, can not re-register it with capability %s",
		e.kindName,
		e.registeredType.String(),
		e.requestedType.String(),
	)
}

func (e *ConflictingRegistrationError) GetKindName() string {
	return e.kindName
}

func (e *ConflictingRegistrationError) GetRegisteredType() reflect.Type {
	return e.registeredType
}

func (e *ConflictingRegistrationError) GetRequestedType() reflect.Type {
	return e.requestedType
}

//--------------------

func NewConflictingRegistrationError(kindName string, registeredType, requestedType reflect.Type) *ConflictingRegistrationError {
	return &ConflictingRegistrationError{
		kindName:       kindName,
		registeredType: registeredType,
		requestedType:  requestedType,
	}
}
