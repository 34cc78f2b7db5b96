package inbound

import (
	"context"

	"github.com/shandysiswandi/eatelite/internal/customer/usecase"
	"github.com/shandysiswandi/eatelite/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	RequestOTP(ctx context.Context, in usecase.RequestOTPInput) error
	ResetPassword(ctx context.Context, in usecase.ResetPasswordInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/customers/register", end.Register)
	r.POST("/api/v1/customers/login", end.Login)
	r.POST("/api/v1/customers/otpverification", end.RequestOTP) // issues an OTP, name kept for existing clients
	r.PATCH("/api/v1/customers/forgotpassword", end.ResetPassword)
}
