package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// WebhookNotifier posts reports to a Discord-style webhook endpoint.
type WebhookNotifier struct {
	URL    string
	Client *http.Client
}

// NewWebhookNotifier creates a notifier with optional proxy support.
// An empty webhook URL disables delivery without being an error.
func NewWebhookNotifier(webhookURL, proxyURL string) *WebhookNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &WebhookNotifier{
		URL: webhookURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// Send delivers the message. When imagePath names an existing file the
// request is multipart/form-data carrying both the content field and
// the image; otherwise a JSON body is used. The HTTP status code is
// not inspected; only transport failures are reported.
func (n *WebhookNotifier) Send(ctx context.Context, text, imagePath string) error {
	if n.URL == "" {
		log.Println("[WARN] webhook URL not configured, skipping send")
		return nil
	}

	var req *http.Request
	var err error
	if imagePath != "" && fileExists(imagePath) {
		req, err = n.newMultipartRequest(ctx, text, imagePath)
	} else {
		req, err = n.newJSONRequest(ctx, text)
	}
	if err != nil {
		return err
	}

	resp, err := n.Client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	log.Println("[INFO] webhook notification sent")
	return nil
}

func (n *WebhookNotifier) newJSONRequest(ctx context.Context, text string) (*http.Request, error) {
	body, err := json.Marshal(map[string]string{"content": text})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, "POST", n.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (n *WebhookNotifier) newMultipartRequest(ctx context.Context, text, imagePath string) (*http.Request, error) {
	img, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("open chart image: %w", err)
	}
	defer img.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("content", text); err != nil {
		return nil, fmt.Errorf("write content field: %w", err)
	}
	part, err := w.CreateFormFile("file", filepath.Base(imagePath))
	if err != nil {
		return nil, fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, img); err != nil {
		return nil, fmt.Errorf("copy chart image: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", n.URL, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
