// Package hash provides one-way hashing for secrets.
//
// Credentials go through a slow, salted algorithm (bcrypt or argon2id) chosen
// by configuration. Short-lived secrets that must be looked up or compared
// cheaply (OTP codes, issued tokens) go through keyed HMAC-SHA256.
package hash
