package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/eatelite/internal/customer"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.customer.enabled") {
		if err := customer.New(customer.Dependency{
			DBConn:     a.dbConn,
			Locker:     a.locker,
			Goroutine:  a.goroutine,
			Router:     a.router,
			Messaging:  a.messaging,
			Mail:       a.mail,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			OID:        a.oid,
			HMAC:       a.hmac,
			Credential: a.credential,
			Clock:      a.clock,
			OTP:        a.otp,
			Validator:  a.validator,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module customer", "error", err)
			os.Exit(1)
		}
	}
}
