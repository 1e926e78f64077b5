package notification

import (
	"context"

	"go.uber.org/zap"

	"homefix/config"
	"homefix/metrics"
)

// Gateway pushes WhatsApp messages without a human in the loop.
//
// Send is fire-and-forget: it reports whether the provider accepted the
// message and never returns the failure itself. Callers must not let a
// false result fail the operation that triggered the message.
type Gateway interface {
	Enabled() bool
	Send(ctx context.Context, to, body, mediaURL string) bool
}

// NewGateway returns the Twilio client when credentials are configured and
// a disabled gateway otherwise.
func NewGateway(cfg *config.Config, logger *zap.Logger) Gateway {
	if !cfg.TwilioEnabled() {
		logger.Info("notification: Twilio credentials not set, automated sends disabled")
		return DisabledGateway{}
	}
	return NewTwilioClient(TwilioOptions{
		BaseURL:    cfg.TwilioBaseURL,
		AccountSID: cfg.TwilioAccountSID,
		AuthToken:  cfg.TwilioAuthToken,
		From:       cfg.TwilioWhatsAppFrom,
		Timeout:    cfg.NotifyTimeout,
	}, logger)
}

// DisabledGateway is used when no provider is configured.
type DisabledGateway struct{}

func (DisabledGateway) Enabled() bool { return false }

func (DisabledGateway) Send(context.Context, string, string, string) bool {
	metrics.ObserveNotification(metrics.NotificationSkipped)
	return false
}
