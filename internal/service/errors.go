package service

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user exists")
	ErrCourseNotFound     = errors.New("no such course found")
	ErrForbidden          = errors.New("access denied")
)

// ValidationError agrupa un mensaje por cada campo requerido faltante, en orden.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError devuelve nil si no hay mensajes.
func NewValidationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}

// Failure es un error de dominio con una unica razon visible para el cliente.
type Failure struct {
	Reason string
	Err    error
}

func (e *Failure) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return e.Reason + ": " + e.Err.Error()
}

func (e *Failure) Unwrap() error {
	return e.Err
}

// AuthFailure describe por que fallo la autenticacion. Solo se loguea;
// el cliente siempre recibe la misma respuesta.
type AuthFailure struct {
	Reason     string
	Identifier string
}

const (
	ReasonNoCredentials     = "no credentials supplied"
	ReasonUnknownIdentifier = "unknown identifier"
	ReasonBadSecret         = "bad secret"
)

func (e *AuthFailure) Error() string {
	return "authentication failed: " + e.Reason
}

func (e *AuthFailure) Is(target error) bool {
	return target == ErrInvalidCredentials
}
