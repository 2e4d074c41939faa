package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies a failure so the HTTP layer can pick a status code without
// inspecting message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindForbidden
	KindUnauthorized
	KindValidation
	KindExternalService
	KindRateLimited
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(msg string) error        { return &Error{Kind: KindNotFound, Message: msg} }
func Forbidden(msg string) error       { return &Error{Kind: KindForbidden, Message: msg} }
func Unauthorized(msg string) error    { return &Error{Kind: KindUnauthorized, Message: msg} }
func Validation(msg string) error      { return &Error{Kind: KindValidation, Message: msg} }
func ExternalService(msg string) error { return &Error{Kind: KindExternalService, Message: msg} }
func RateLimited(msg string) error     { return &Error{Kind: KindRateLimited, Message: msg} }

var (
	ErrDomainNotFound   = NotFound("domain not found")
	ErrFormNotFound     = NotFound("form not found")
	ErrNotDomainOwner   = Forbidden("you do not own this domain")
	ErrMissingAPIKey    = Unauthorized("missing API key")
	ErrInvalidAPIKey    = Forbidden("invalid API key")
	ErrMissingSession   = Unauthorized("missing or invalid session token")
	ErrOriginNotAllowed = Forbidden("submissions from this origin are not allowed")
	ErrTooManyRequests  = RateLimited("too many requests, slow down")
)

// KindOf returns the Kind carried by err, or KindUnknown for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusOf maps a service error to the HTTP status code used in responses.
// Unknown errors map to 500; callers must not leak their message text.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindForbidden:
		return fiber.StatusForbidden
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindValidation:
		return fiber.StatusBadRequest
	case KindExternalService:
		return fiber.StatusBadGateway
	case KindRateLimited:
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusInternalServerError
	}
}
