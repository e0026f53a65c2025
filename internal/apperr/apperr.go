// Package apperr defines the business-rule failures the services return.
// Every failure carries a stable machine-readable kind and a human message;
// anything that is not an *Error is an infrastructure problem and passes
// through the services untouched.
package apperr

import "errors"

type Kind string

const (
	KindSelfBooking          Kind = "self_booking"
	KindPastDate             Kind = "past_date"
	KindOutsideBusinessHours Kind = "outside_business_hours"
	KindSlotTaken            Kind = "slot_taken"
	KindInvalidCredentials   Kind = "invalid_credentials"
	KindUserNotFound         Kind = "user_not_found"
	KindInvalidToken         Kind = "invalid_token"
	KindTokenExpired         Kind = "token_expired"
	KindEmailExists          Kind = "email_already_exists"
	KindUserMissing          Kind = "user_missing"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches by kind, so wrapped errors still compare equal to the
// sentinels below under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrSelfBooking          = &Error{KindSelfBooking, "cannot book an appointment with yourself"}
	ErrPastDate             = &Error{KindPastDate, "cannot book an appointment on a past date"}
	ErrOutsideBusinessHours = &Error{KindOutsideBusinessHours, "appointments can only be booked between 8am and 5pm"}
	ErrSlotTaken            = &Error{KindSlotTaken, "this appointment slot is already booked"}
	ErrInvalidCredentials   = &Error{KindInvalidCredentials, "incorrect email/password combination"}
	ErrUserNotFound         = &Error{KindUserNotFound, "user does not exist"}
	ErrInvalidToken         = &Error{KindInvalidToken, "recovery token is not valid"}
	ErrTokenExpired         = &Error{KindTokenExpired, "recovery token has expired"}
	ErrEmailExists          = &Error{KindEmailExists, "email address is already in use"}
	ErrUserMissing          = &Error{KindUserMissing, "user does not exist"}
)

// KindOf extracts the business kind from err, if it carries one.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
