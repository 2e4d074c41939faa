// Package notify delivers new-submission emails to form owners through the
// Resend HTTP API. Delivery is fire-and-forget; a failed send is logged and
// never fails the submission.
package notify

//go:generate mockgen -destination=../mocks/mock_notifier.go -package=mocks github.com/CodeRohanDev/FastSubmit-sub004/internal/notify Notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type Notifier interface {
	SubmissionReceived(ctx context.Context, n Notification) error
}

// Notification carries everything the email needs; the notifier has no
// access to the datastore.
type Notification struct {
	To       string
	FormName string
	FormID   string
	Data     map[string]any
}

const resendEndpoint = "https://api.resend.com/emails"

type ResendNotifier struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
	log      zerolog.Logger
}

func NewResendNotifier(apiKey, from string, log zerolog.Logger) *ResendNotifier {
	return &ResendNotifier{
		apiKey:   apiKey,
		from:     from,
		endpoint: resendEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

func (r *ResendNotifier) SubmissionReceived(ctx context.Context, n Notification) error {
	if n.To == "" {
		return nil
	}

	body, err := json.Marshal(map[string]any{
		"from":    r.from,
		"to":      []string{n.To},
		"subject": fmt.Sprintf("New submission on %s", n.FormName),
		"html":    renderSubmissionHTML(n),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("resend returned status %d", resp.StatusCode)
	}
	r.log.Debug().Str("form_id", n.FormID).Str("to", n.To).Msg("submission notification sent")
	return nil
}

func renderSubmissionHTML(n Notification) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "<h2>New submission on %s</h2><table>", html.EscapeString(n.FormName))
	for k, v := range n.Data {
		fmt.Fprintf(&b, "<tr><td><strong>%s</strong></td><td>%s</td></tr>",
			html.EscapeString(k), html.EscapeString(fmt.Sprintf("%v", v)))
	}
	b.WriteString("</table>")
	return b.String()
}

// LogNotifier is the development fallback when no Resend key is configured.
type LogNotifier struct {
	Log zerolog.Logger
}

func (l LogNotifier) SubmissionReceived(_ context.Context, n Notification) error {
	l.Log.Info().Str("form_id", n.FormID).Str("to", n.To).Msg("submission received (email delivery disabled)")
	return nil
}
