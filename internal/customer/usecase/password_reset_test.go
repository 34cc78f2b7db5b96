package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/eatelite/internal/customer/entity"
	"github.com/shandysiswandi/eatelite/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	oldPass = "Abcdef1!"
	newPass = "Newpass2#"
)

// withOTP registers ana and requests one code, returning it.
func withOTP(t *testing.T, h *harness) string {
	t.Helper()
	h.register(t, "ana@example.com", oldPass)
	require.NoError(t, h.uc.RequestOTP(context.Background(), RequestOTPInput{Email: "ana@example.com"}))
	return h.notifier.last("ana@example.com")
}

func TestUsecase_ResetPassword_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      func(code string) ResetPasswordInput
		setup   func(h *harness)
		wantKey string
		server  bool
	}{
		{
			name: "missing otp",
			in: func(string) ResetPasswordInput {
				return ResetPasswordInput{Email: "ana@example.com", NewPassword: newPass, ConfirmPassword: newPass}
			},
			wantKey: entity.KeyBadRequest,
		},
		{
			name: "confirmation mismatch",
			in: func(code string) ResetPasswordInput {
				return ResetPasswordInput{Email: "ana@example.com", NewPassword: newPass, ConfirmPassword: newPass + "x", OTP: code}
			},
			wantKey: entity.KeyNewPasswordMismatch,
		},
		{
			name: "unknown email",
			in: func(code string) ResetPasswordInput {
				return ResetPasswordInput{Email: "bob@example.com", NewPassword: newPass, ConfirmPassword: newPass, OTP: code}
			},
			wantKey: entity.KeyWrongEmail,
		},
		{
			name: "wrong code",
			in: func(string) ResetPasswordInput {
				return ResetPasswordInput{Email: "ana@example.com", NewPassword: newPass, ConfirmPassword: newPass, OTP: "9999"}
			},
			wantKey: entity.KeyOTPMismatch,
		},
		{
			name: "expired correct code",
			in: func(code string) ResetPasswordInput {
				return ResetPasswordInput{Email: "ana@example.com", NewPassword: newPass, ConfirmPassword: newPass, OTP: code}
			},
			setup:   func(h *harness) { h.clock.Advance(121 * time.Second) },
			wantKey: entity.KeyOTPExpired,
		},
		{
			name: "weak new password",
			in: func(code string) ResetPasswordInput {
				return ResetPasswordInput{Email: "ana@example.com", NewPassword: "newpass2#", ConfirmPassword: "newpass2#", OTP: code}
			},
			wantKey: entity.KeyPasswordNoUpper,
		},
		{
			name: "store failure",
			in: func(code string) ResetPasswordInput {
				return ResetPasswordInput{Email: "ana@example.com", NewPassword: newPass, ConfirmPassword: newPass, OTP: code}
			},
			setup:  func(h *harness) { h.db.errReset = errBoom },
			server: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			code := withOTP(t, h)
			before := h.db.credentialOf("ana@example.com")
			if tt.setup != nil {
				tt.setup(h)
			}

			err := h.uc.ResetPassword(context.Background(), tt.in(code))

			if tt.server {
				assertServerError(t, err)
			} else {
				assertKey(t, err, tt.wantKey)
			}
			assert.Equal(t, before, h.db.credentialOf("ana@example.com"), "credential must not change")
		})
	}
}

func TestUsecase_ResetPassword_NoOTPIssued(t *testing.T) {
	h := newHarness(t)
	h.register(t, "ana@example.com", oldPass)

	err := h.uc.ResetPassword(context.Background(), ResetPasswordInput{
		Email: "ana@example.com", NewPassword: newPass, ConfirmPassword: newPass, OTP: "1234",
	})

	assertServerError(t, err)
}

func TestUsecase_ResetPassword_ConsumesCode(t *testing.T) {
	h := newHarness(t)
	code := withOTP(t, h)
	in := ResetPasswordInput{Email: "ana@example.com", NewPassword: newPass, ConfirmPassword: newPass, OTP: code}

	require.NoError(t, h.uc.ResetPassword(context.Background(), in))
	require.NotNil(t, h.db.otps[0].ConsumedAt)

	in.NewPassword, in.ConfirmPassword = "Another3$", "Another3$"
	assertKey(t, h.uc.ResetPassword(context.Background(), in), entity.KeyOTPExpired)

	h.drain(t)
	assert.Len(t, h.msg.resets, 1)
}

func TestUsecase_ResetPassword_StoreOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantKey string
	}{
		{name: "code consumed by a parallel reset", err: goerror.ErrConflict, wantKey: entity.KeyOTPExpired},
		{name: "customer deleted meanwhile", err: goerror.ErrNotFound, wantKey: entity.KeyWrongEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			code := withOTP(t, h)
			h.db.errReset = tt.err

			err := h.uc.ResetPassword(context.Background(), ResetPasswordInput{
				Email: "ana@example.com", NewPassword: newPass, ConfirmPassword: newPass, OTP: code,
			})

			assertKey(t, err, tt.wantKey)
		})
	}
}
