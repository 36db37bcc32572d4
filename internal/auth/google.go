package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultGoogleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

var ErrGoogleTokenRejected = errors.New("google rejected the token")

// GoogleIdentity - проверенная личность из Google ID-токена
type GoogleIdentity struct {
	GoogleID  string
	Email     string
	Name      string
	AvatarURL string
}

// GoogleVerifier проверяет ID-токен через tokeninfo endpoint.
// Передается в auth-сервис как зависимость, чтобы тесты подменяли
// endpoint на httptest-сервер.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

type GoogleVerifierConfig struct {
	ClientID string
	// TokenInfoURL переопределяется в тестах
	TokenInfoURL string
	Timeout      time.Duration
}

type googleVerifier struct {
	config GoogleVerifierConfig
	client *http.Client
}

// NewGoogleVerifier создает GoogleVerifier с таймаутом на HTTP-клиенте:
// зависший провайдер должен превратиться в ошибку, а не в вечный запрос
func NewGoogleVerifier(config GoogleVerifierConfig) GoogleVerifier {
	if config.TokenInfoURL == "" {
		config.TokenInfoURL = defaultGoogleTokenInfoURL
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	return &googleVerifier{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// tokenInfoResponse - ответ Google tokeninfo endpoint-а
type tokenInfoResponse struct {
	Sub     string `json:"sub"`
	Aud     string `json:"aud"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (v *googleVerifier) Verify(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	reqURL := v.config.TokenInfoURL + "?id_token=" + url.QueryEscape(idToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create tokeninfo request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		// Таймаут и сетевые ошибки - тоже отказ аутентификации
		return nil, fmt.Errorf("%w: %v", ErrGoogleTokenRejected, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tokeninfo response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrGoogleTokenRejected, resp.StatusCode)
	}

	var info tokenInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse tokeninfo response: %w", err)
	}

	if info.Sub == "" || info.Email == "" {
		return nil, fmt.Errorf("%w: incomplete identity", ErrGoogleTokenRejected)
	}

	// aud проверяем только когда client_id задан (в тестах он пустой)
	if v.config.ClientID != "" && info.Aud != v.config.ClientID {
		return nil, fmt.Errorf("%w: audience mismatch", ErrGoogleTokenRejected)
	}

	return &GoogleIdentity{
		GoogleID:  info.Sub,
		Email:     info.Email,
		Name:      info.Name,
		AvatarURL: info.Picture,
	}, nil
}
