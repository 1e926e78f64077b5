package notification

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"homefix/metrics"
)

const whatsappScheme = "whatsapp:"

// TwilioOptions configures TwilioClient.
type TwilioOptions struct {
	BaseURL    string // e.g., "https://api.twilio.com"
	AccountSID string
	AuthToken  string
	From       string // Sender number, with or without the "whatsapp:" scheme
	Timeout    time.Duration
}

// TwilioClient sends WhatsApp messages through Twilio's Messages API.
type TwilioClient struct {
	opts   TwilioOptions
	client *http.Client
	logger *zap.Logger
}

type twilioMessage struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type twilioError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewTwilioClient creates a client whose every call is bounded by
// opts.Timeout.
func NewTwilioClient(opts TwilioOptions, logger *zap.Logger) *TwilioClient {
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &TwilioClient{
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
		logger: logger.Named("twilio"),
	}
}

func (t *TwilioClient) Enabled() bool { return true }

// Send implements Gateway. Errors are logged and reported as false.
func (t *TwilioClient) Send(ctx context.Context, to, body, mediaURL string) bool {
	if to == "" {
		t.logger.Warn("send skipped: empty recipient")
		metrics.ObserveNotification(metrics.NotificationSkipped)
		return false
	}

	ok := t.send(ctx, to, body, mediaURL)
	if ok {
		metrics.ObserveNotification(metrics.NotificationSent)
	} else {
		metrics.ObserveNotification(metrics.NotificationFailed)
	}
	return ok
}

func (t *TwilioClient) send(ctx context.Context, to, body, mediaURL string) bool {
	form := url.Values{}
	form.Set("To", withScheme(to))
	form.Set("From", withScheme(t.opts.From))
	form.Set("Body", body)
	if mediaURL != "" {
		form.Set("MediaUrl", mediaURL)
	}

	endpoint := t.opts.BaseURL + "/2010-04-01/Accounts/" + url.PathEscape(t.opts.AccountSID) + "/Messages.json"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		t.logger.Error("building request failed", zap.Error(err))
		return false
	}
	req.SetBasicAuth(t.opts.AccountSID, t.opts.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Warn("request failed", zap.String("to", to), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		t.logger.Warn("reading response failed", zap.String("to", to), zap.Error(err))
		return false
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr twilioError
		_ = json.Unmarshal(payload, &apiErr)
		t.logger.Warn("message rejected",
			zap.String("to", to),
			zap.Int("status", resp.StatusCode),
			zap.Int("code", apiErr.Code),
			zap.String("message", apiErr.Message),
		)
		return false
	}

	var msg twilioMessage
	_ = json.Unmarshal(payload, &msg)
	t.logger.Info("message accepted",
		zap.String("to", to),
		zap.String("sid", msg.SID),
		zap.String("status", msg.Status),
	)
	return true
}

func withScheme(addr string) string {
	if strings.HasPrefix(addr, whatsappScheme) {
		return addr
	}
	return whatsappScheme + addr
}
