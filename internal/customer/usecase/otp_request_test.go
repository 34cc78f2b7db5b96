package usecase

import (
	"context"
	"testing"

	"github.com/shandysiswandi/eatelite/internal/customer/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsecase_RequestOTP(t *testing.T) {
	t.Run("issues and mails a code", func(t *testing.T) {
		h := newHarness(t)
		h.register(t, "ana@example.com", "Abcdef1!")

		err := h.uc.RequestOTP(context.Background(), RequestOTPInput{Email: "ana@example.com"})

		require.NoError(t, err)
		code := h.notifier.last("ana@example.com")
		assert.Len(t, code, 4)
		require.Len(t, h.db.otps, 1)
		assert.NotEqual(t, code, h.db.otps[0].Code)
	})

	t.Run("missing email", func(t *testing.T) {
		h := newHarness(t)
		assertKey(t, h.uc.RequestOTP(context.Background(), RequestOTPInput{}), entity.KeyBadRequest)
	})

	t.Run("unknown email", func(t *testing.T) {
		h := newHarness(t)
		assertKey(t, h.uc.RequestOTP(context.Background(), RequestOTPInput{Email: "bob@example.com"}), entity.KeyWrongEmail)
	})

	t.Run("notifier failure is opaque", func(t *testing.T) {
		h := newHarness(t)
		h.register(t, "ana@example.com", "Abcdef1!")
		h.notifier.err = errBoom

		assertServerError(t, h.uc.RequestOTP(context.Background(), RequestOTPInput{Email: "ana@example.com"}))
	})

	t.Run("store failure is opaque", func(t *testing.T) {
		h := newHarness(t)
		h.db.errGet = errBoom

		assertServerError(t, h.uc.RequestOTP(context.Background(), RequestOTPInput{Email: "ana@example.com"}))
	})
}
