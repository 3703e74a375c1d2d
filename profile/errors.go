package profile

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidUUID           = errors.New("invalid uuid")
	ErrDuplicateUUID         = errors.New("duplicate uuid")
	ErrUnknownService        = errors.New("unknown service")
	ErrUnknownCharacteristic = errors.New("unknown characteristic")
	ErrInvalidProfile        = errors.New("invalid profile")
)

func NewInvalidUUIDError(uuid string) error {
	return fmt.Errorf("%w: %q", ErrInvalidUUID, uuid)
}

func NewDuplicateUUIDError(uuid, existing string) error {
	return fmt.Errorf("%w: %s already registered by %s", ErrDuplicateUUID, uuid, existing)
}

func NewUnknownCharacteristicError(uuid string) error {
	return fmt.Errorf("%w: %s", ErrUnknownCharacteristic, uuid)
}

func NewUnknownServiceError(uuid string) error {
	return fmt.Errorf("%w: %s", ErrUnknownService, uuid)
}
