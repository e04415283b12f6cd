// Package formrelay forwards curator transcripts to the third-party form
// endpoint (Formspree) that delivers them as email.
package formrelay

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"github.com/keelridge/blankchart/internal/config"
	"github.com/keelridge/blankchart/internal/domain/transcript"
	"github.com/keelridge/blankchart/internal/infrastructure/httpclients"
)

// Client posts transcripts to a fixed form identifier.
type Client struct {
	client *resty.Client
	formID string
}

// NewClient builds the form relay client from configuration.
func NewClient(cfg *config.Config) *Client {
	client := httpclients.NewClient("FormRelayClient", cfg.FormRelayTimeout)
	client.SetBaseURL(cfg.FormRelayBaseURL)
	client.SetHeader("Accept", "application/json")

	return &Client{
		client: client,
		formID: cfg.FormRelayFormID,
	}
}

type submission struct {
	Subject     string `json:"_subject"`
	Name        string `json:"name"`
	Destination string `json:"destination"`
	Transcript  string `json:"transcript"`
}

// Send performs the single POST carrying the transcript. One attempt, no
// retries; the dispatcher owns failure accounting.
func (c *Client) Send(ctx context.Context, fwd transcript.Forward) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(submission{
			Subject:     fwd.Subject,
			Name:        fwd.Name,
			Destination: fwd.Destination,
			Transcript:  fwd.Document,
		}).
		Post(fmt.Sprintf("/f/%s", c.formID))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("form relay returned %s", resp.Status())
	}
	return nil
}
