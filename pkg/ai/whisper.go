package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/minutemind/minutemind/pkg/config"
)

// WhisperClient transcribes audio through Groq's Whisper endpoint
type WhisperClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewWhisperClient creates a Whisper client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewWhisperClient(cfg *config.GroqConfig) *WhisperClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("GROQ_API_URL")
		if base == "" {
			base = "https://api.groq.com"
		}
	}

	model := "distil-whisper-large-v3-en"
	if cfg != nil && cfg.WhisperModel != "" {
		model = cfg.WhisperModel
	}

	return &WhisperClient{
		apiKey:  apiKey,
		baseURL: base,
		model:   model,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads the audio and returns the transcript text. Transient
// failures are retried with exponential backoff for up to a minute.
func (w *WhisperClient) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	var text string

	operation := func() error {
		result, err := w.transcribeOnce(ctx, filename, audio)
		if err != nil {
			return err
		}
		text = result
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 1 * time.Minute

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return text, nil
}

func (w *WhisperClient) transcribeOnce(ctx context.Context, filename string, audio []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fw, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(audio); err != nil {
		return "", err
	}
	if err := writer.WriteField("model", w.model); err != nil {
		return "", err
	}
	if err := writer.WriteField("response_format", "json"); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	endpoint := w.baseURL + "/openai/v1/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+w.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := w.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return "", fmt.Errorf("whisper returned status %d", resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		// Client errors will not fix themselves on retry.
		b, _ := io.ReadAll(resp.Body)
		return "", backoff.Permanent(fmt.Errorf("whisper returned status %d: %s", resp.StatusCode, string(b)))
	}

	var tr transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", err
	}
	return tr.Text, nil
}
