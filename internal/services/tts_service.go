// internal/services/tts_service.go
package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type TTSConfig struct {
	OpenAIAPIKey string // optional; pass-through backend is used when empty
	BaseURL      string // pass-through TTS endpoint
}

// TTSServiceInterface synthesizes speech for announcements read to the
// group. The caller streams the returned body and must close it.
type TTSServiceInterface interface {
	Synthesize(ctx context.Context, text string, lang string) (io.ReadCloser, string, error)
}

type ttsService struct {
	http   *http.Client
	cfg    TTSConfig
	openai *openai.Client
}

func NewTTSService(cfg TTSConfig, httpClient *http.Client) TTSServiceInterface {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	service := &ttsService{
		http: httpClient,
		cfg:  cfg,
	}
	if cfg.OpenAIAPIKey != "" {
		service.openai = openai.NewClient(cfg.OpenAIAPIKey)
	}
	return service
}

func (s *ttsService) Synthesize(ctx context.Context, text string, lang string) (io.ReadCloser, string, error) {
	if text == "" {
		return nil, "", fmt.Errorf("text is required")
	}
	if lang == "" {
		lang = "zh-TW"
	}

	if s.openai != nil {
		return s.synthesizeOpenAI(ctx, text)
	}
	return s.passthrough(ctx, text, lang)
}

func (s *ttsService) synthesizeOpenAI(ctx context.Context, text string) (io.ReadCloser, string, error) {
	resp, err := s.openai.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: text,
		Voice: openai.VoiceAlloy,
	})
	if err != nil {
		return nil, "", err
	}
	return resp, "audio/mpeg", nil
}

// passthrough forwards the request to the hosted TTS endpoint and hands the
// audio stream straight back. No caching.
func (s *ttsService) passthrough(ctx context.Context, text string, lang string) (io.ReadCloser, string, error) {
	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("client", "tw-ob")
	query.Set("q", text)
	query.Set("tl", lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, "", fmt.Errorf("tts provider status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	return resp.Body, contentType, nil
}
