package entity

import (
	"fmt"

	"github.com/shandysiswandi/eatelite/internal/pkg/goerror"
)

var (
	// ErrDuplicateEmail is a conflict on the active-email unique index.
	ErrDuplicateEmail = fmt.Errorf("%w: email", goerror.ErrConflict)

	// ErrDuplicatePhone is a conflict on the active-phone unique index.
	ErrDuplicatePhone = fmt.Errorf("%w: mobile number", goerror.ErrConflict)
)

// Message keys returned to clients.
const (
	KeyBadRequest          = "BAD_REQUEST"
	KeyPasswordLength      = "PASSWORD_LENGTH_SHOULD_BE_BETWEEN_8_TO_20"
	KeyPasswordNoDigit     = "PASSWORD_MUST_HAVE_ONE_NUMBER"
	KeyPasswordNoLower     = "PASSWORD_MUST_HAVE_ONE_SMALLERCASE_LETTER"
	KeyPasswordNoUpper     = "PASSWORD_MUST_HAVE_ONE_UPPERCASE_LETTER"
	KeyPasswordNoSpecial   = "PASSWORD_MUST_HAVE_ONE_SPECIAL_CHARACTER"
	KeyDuplicateEmail      = "EMAIL_ALREADY_EXISTS"
	KeyDuplicatePhone      = "MOBILE_NO_ALREADY_EXISTS"
	KeyWrongEmail          = "WRONG_EMAIL"
	KeyIncorrectPassword   = "INCORRECT_PASSWORD"
	KeyNewPasswordMismatch = "NEW_PASSWORD_DOESNT_MATCH"
	KeyOTPExpired          = "OTP_EXPIRED"
	KeyOTPMismatch         = "OTP_DOESNT_MATCH"

	KeyRegistered      = "USER_REGISTERED_SUCCESSFULLY"
	KeyLoggedIn        = "USER_LOGGED_IN_SUCCESSFULLY"
	KeyOTPSent         = "OTP_SENT_SUCCESSFULLY_TO_YOUR_EMAIL_ID"
	KeyPasswordUpdated = "YOUR_PASSWORD_UPDATED_SUCCESSFULLY"
)

var (
	ErrBadRequest          = goerror.NewBusiness(KeyBadRequest, "Bad request", goerror.CodeBadRequest)
	ErrEmailTaken          = goerror.NewBusiness(KeyDuplicateEmail, "Email already exists", goerror.CodeBadRequest)
	ErrPhoneTaken          = goerror.NewBusiness(KeyDuplicatePhone, "Mobile number already exists", goerror.CodeBadRequest)
	ErrWrongEmail          = goerror.NewBusiness(KeyWrongEmail, "No customer with this email", goerror.CodeBadRequest)
	ErrIncorrectPassword   = goerror.NewBusiness(KeyIncorrectPassword, "Incorrect password", goerror.CodeBadRequest)
	ErrNewPasswordMismatch = goerror.NewBusiness(KeyNewPasswordMismatch, "New password and confirmation do not match", goerror.CodeBadRequest)
	ErrOTPExpired          = goerror.NewBusiness(KeyOTPExpired, "OTP has expired", goerror.CodeBadRequest)
	ErrOTPMismatch         = goerror.NewBusiness(KeyOTPMismatch, "OTP does not match", goerror.CodeBadRequest)
)
