package notifier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSend_JSONPayloadWithoutImage(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, "")
	if err := n.Send(context.Background(), "每日報告", ""); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", gotContentType)
	}
	var payload map[string]string
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload["content"] != "每日報告" {
		t.Errorf("expected content field, got %q", payload["content"])
	}
}

func TestSend_MultipartWithImage(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "gold_chart.png")
	if err := os.WriteFile(imgPath, []byte{0x89, 'P', 'N', 'G'}, 0644); err != nil {
		t.Fatal(err)
	}

	var gotContent string
	var gotFile []byte
	var gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		gotContent = r.FormValue("content")
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing file part: %v", err)
			return
		}
		defer file.Close()
		gotFilename = header.Filename
		gotFile, _ = io.ReadAll(file)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, "")
	if err := n.Send(context.Background(), "附圖報告", imgPath); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if gotContent != "附圖報告" {
		t.Errorf("expected content field in form, got %q", gotContent)
	}
	if gotFilename != "gold_chart.png" {
		t.Errorf("expected base filename, got %q", gotFilename)
	}
	if string(gotFile[1:4]) != "PNG" {
		t.Errorf("expected image bytes to round-trip, got %v", gotFile)
	}
}

func TestSend_MissingImageFallsBackToJSON(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		io.Copy(io.Discard, r.Body)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, "")
	if err := n.Send(context.Background(), "msg", filepath.Join(t.TempDir(), "nope.png")); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if !strings.HasPrefix(gotContentType, "application/json") {
		t.Errorf("expected JSON fallback for missing image, got %q", gotContentType)
	}
}

func TestSend_NoURLSkipsDelivery(t *testing.T) {
	n := NewWebhookNotifier("", "")
	if err := n.Send(context.Background(), "msg", ""); err != nil {
		t.Errorf("expected nil error when webhook is unset, got %v", err)
	}
}

func TestSend_StatusCodeNotInspected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, "")
	if err := n.Send(context.Background(), "msg", ""); err != nil {
		t.Errorf("expected nil error on non-2xx status, got %v", err)
	}
}
