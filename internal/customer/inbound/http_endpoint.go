package inbound

import (
	"github.com/shandysiswandi/eatelite/internal/customer/entity"
	"github.com/shandysiswandi/eatelite/internal/customer/usecase"
	"github.com/shandysiswandi/eatelite/internal/pkg/router"
)

// HTTPEndpoint exposes the customer identity flows over HTTP.
type HTTPEndpoint struct {
	uc uc
}

func clientInfo(r *router.Request) entity.ClientInfo {
	return entity.ClientInfo{IP: r.RemoteAddr, UserAgent: r.UserAgent()}
}

// Register creates a customer and returns its first token pair.
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.MobileNo,
		DOB:      req.DOB,
		Client:   clientInfo(r),
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{tokenResponse{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		IssuedAt:     resp.IssuedAt,
	}}, nil
}

// Login authenticates by email and password.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Client:   clientInfo(r),
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{tokenResponse{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		IssuedAt:     resp.IssuedAt,
	}}, nil
}

// RequestOTP mails a fresh one-time passcode to the customer.
func (h *HTTPEndpoint) RequestOTP(r *router.Request) (any, error) {
	var req RequestOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.RequestOTP(r.Context(), usecase.RequestOTPInput{Email: req.Email}); err != nil {
		return nil, err
	}

	return RequestOTPResponse{}, nil
}

// ResetPassword replaces the credential after checking the emailed code.
func (h *HTTPEndpoint) ResetPassword(r *router.Request) (any, error) {
	var req ResetPasswordRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.ResetPassword(r.Context(), usecase.ResetPasswordInput{
		Email:           req.Email,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
		OTP:             req.OTP,
	}); err != nil {
		return nil, err
	}

	return ResetPasswordResponse{}, nil
}
