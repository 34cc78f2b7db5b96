// Package jwt signs and verifies HS512 access tokens for customers.
package jwt
