package customer

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/eatelite/internal/customer/inbound"
	"github.com/shandysiswandi/eatelite/internal/customer/ledger"
	"github.com/shandysiswandi/eatelite/internal/customer/outbound/db"
	"github.com/shandysiswandi/eatelite/internal/customer/outbound/mq"
	"github.com/shandysiswandi/eatelite/internal/customer/outbound/notifier"
	"github.com/shandysiswandi/eatelite/internal/customer/outbound/token"
	"github.com/shandysiswandi/eatelite/internal/customer/usecase"
	"github.com/shandysiswandi/eatelite/internal/pkg/clock"
	"github.com/shandysiswandi/eatelite/internal/pkg/config"
	"github.com/shandysiswandi/eatelite/internal/pkg/goroutine"
	"github.com/shandysiswandi/eatelite/internal/pkg/hash"
	"github.com/shandysiswandi/eatelite/internal/pkg/instrument"
	"github.com/shandysiswandi/eatelite/internal/pkg/jwt"
	"github.com/shandysiswandi/eatelite/internal/pkg/lock"
	"github.com/shandysiswandi/eatelite/internal/pkg/mail"
	"github.com/shandysiswandi/eatelite/internal/pkg/messaging"
	"github.com/shandysiswandi/eatelite/internal/pkg/otp"
	"github.com/shandysiswandi/eatelite/internal/pkg/router"
	"github.com/shandysiswandi/eatelite/internal/pkg/uid"
	"github.com/shandysiswandi/eatelite/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Locker     lock.Locker                `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Publisher        `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	OID        uid.StringID               `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	Credential hash.Hash                  `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	OTP        otp.OTP                    `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	store := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	otpLedger := ledger.New(ledger.Dependency{
		Store:      store,
		Generator:  dep.OTP,
		Digest:     dep.HMAC,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
		TTL:        dep.Config.GetSecond("modules.customer.otp_ttl_seconds"),
	})

	issuer := token.New(token.Dependency{
		Store:      store,
		JWT:        dep.JWT,
		UID:        dep.UID,
		OID:        dep.OID,
		Digest:     dep.HMAC,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
		RefreshTTL: dep.Config.GetDay("modules.customer.refresh_token_ttl_days"),
	})

	mailer := notifier.New(dep.Mail, dep.Instrument, notifier.Config{
		Subject:    dep.Config.GetString("modules.customer.otp_mail.subject"),
		From:       dep.Config.GetString("modules.customer.otp_mail.from"),
		MaxRetries: uint64(max(dep.Config.GetInt("modules.customer.otp_mail.max_retries"), 0)),
		Backoff:    time.Duration(dep.Config.GetInt("modules.customer.otp_mail.backoff_ms")) * time.Millisecond,
	})

	uc := usecase.New(usecase.Dependency{
		RepoDB:        store,
		RepoMessaging: repoMsg,
		Ledger:        otpLedger,
		Tokens:        issuer,
		Notifier:      mailer,
		Locker:        dep.Locker,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Credential:    dep.Credential,
		UID:           dep.UID,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
