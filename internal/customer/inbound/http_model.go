package inbound

import (
	"net/http"
	"time"

	"github.com/shandysiswandi/eatelite/internal/customer/entity"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	MobileNo string `json:"mobile_no"`
	DOB      string `json:"dob"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RequestOTPRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
	OTP             string `json:"otp"`
}

type tokenResponse struct {
	AccessToken  string    `json:"auth_access_token"`
	RefreshToken string    `json:"auth_refresh_token"`
	IssuedAt     time.Time `json:"issued_at"`
}

type RegisterResponse struct {
	tokenResponse
}

func (RegisterResponse) StatusCode() int { return http.StatusCreated }
func (RegisterResponse) Message() string { return "User registered successfully" }
func (RegisterResponse) Code() string    { return entity.KeyRegistered }

type LoginResponse struct {
	tokenResponse
}

func (LoginResponse) Message() string { return "User logged in successfully" }
func (LoginResponse) Code() string    { return entity.KeyLoggedIn }

type RequestOTPResponse struct{}

func (RequestOTPResponse) Message() string { return "OTP sent successfully to your email id" }
func (RequestOTPResponse) Code() string    { return entity.KeyOTPSent }
func (RequestOTPResponse) Empty() bool     { return true }

type ResetPasswordResponse struct{}

func (ResetPasswordResponse) Message() string { return "Your password updated successfully" }
func (ResetPasswordResponse) Code() string    { return entity.KeyPasswordUpdated }
func (ResetPasswordResponse) Empty() bool     { return true }
