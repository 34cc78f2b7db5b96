// Package mail sends transactional email through a configurable driver:
// plain SMTP or the MailerSend HTTP API.
package mail
