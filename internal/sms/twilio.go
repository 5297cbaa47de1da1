package sms

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
	"leaseline.app/server/common/logger"
	"leaseline.app/server/core/config"
)

type twilioGateway struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioGateway builds a Gateway over the Twilio REST API. When
// credentials are missing it returns a gateway that logs what it would
// have sent and reports an error, so local development works without an
// account and callers still exercise their failure paths.
func NewTwilioGateway(cfg config.TwilioConfig) Gateway {
	if !cfg.Enabled() {
		return &loggingGateway{}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &twilioGateway{
		client: client,
		from:   cfg.FromNumber,
	}
}

func (g *twilioGateway) Send(ctx context.Context, to, body string) (*Result, error) {
	params := &api.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(g.from)
	params.SetBody(body)

	msg, err := g.client.Api.CreateMessage(params)
	if err != nil {
		return nil, fmt.Errorf("twilio send to %s: %w", to, err)
	}

	sid := ""
	if msg.Sid != nil {
		sid = *msg.Sid
	}

	slog.InfoContext(ctx, "sms sent",
		"to", to,
		"sid", sid,
		"body", logger.Truncate(body, 60))

	return &Result{SID: sid}, nil
}

// loggingGateway stands in when Twilio is not configured.
type loggingGateway struct{}

func (g *loggingGateway) Send(ctx context.Context, to, body string) (*Result, error) {
	slog.InfoContext(ctx, "sms gateway disabled, would send",
		"to", to,
		"body", body)
	return nil, fmt.Errorf("sms gateway not configured")
}
