package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("Employee ID already exists")
	ErrEmailExists        = errors.New("Email already registered")
	ErrUnknownUpdate      = errors.New("unknown employee update command")
)
