package strcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLowerSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "Email", want: "email"},
		{in: "MobileNo", want: "mobile_no"},
		{in: "CustomerID", want: "customer_id"},
		{in: "HTTPServer", want: "http_server"},
		{in: "NewPassword2", want: "new_password2"},
		{in: "otp2Code", want: "otp2_code"},
		{in: "confirm-password", want: "confirm_password"},
		{in: "  new password ", want: "new_password"},
		{in: "already_snake", want: "already_snake"},
		{in: "DOB", want: "dob"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToLowerSnake(tt.in))
		})
	}
}
