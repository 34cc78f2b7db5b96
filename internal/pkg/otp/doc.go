// Package otp generates short numeric one-time passcodes.
//
// Codes are drawn uniformly from a closed range using crypto/rand, so every
// code has the same number of digits when the range bounds share a width
// (for example [1000, 9999] always yields four digits without leading zeros).
package otp
