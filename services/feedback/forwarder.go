package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"alpsconnect/models"
)

// Forwarder delivers a feedback record to an external collector.
type Forwarder interface {
	Forward(ctx context.Context, record models.FeedbackRecord) error
}

// FormForwarder posts records as JSON to a Formspree-style form endpoint.
type FormForwarder struct {
	Endpoint   string
	HTTPClient *http.Client
}

func NewFormForwarder(endpoint string) *FormForwarder {
	return &FormForwarder{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type formPayload struct {
	models.FeedbackRecord
	Subject string `json:"_subject"`
}

func (f *FormForwarder) Forward(ctx context.Context, record models.FeedbackRecord) error {
	payload := formPayload{
		FeedbackRecord: record,
		Subject:        fmt.Sprintf("AlpsConnect Feedback (%s)", record.Role),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("form endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
