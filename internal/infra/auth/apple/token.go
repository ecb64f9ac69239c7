package apple

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"preesh/internal/domain/service"
)

// appleTokenResponse mirrors the provider's token endpoint payload.
type appleTokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	IDToken      string `json:"id_token"`
}

type appleErrorResponse struct {
	Error string `json:"error"`
}

// ExchangeAuthorizationCode implements service.AppleAuthService. It trades an
// authorization code for Apple's token bundle, authenticating with a freshly
// minted client secret. No retries; the caller bounds the call via ctx.
func (s *authService) ExchangeAuthorizationCode(ctx context.Context, code string) (*service.AppleTokenBundle, error) {
	secret, err := s.clientSecret()
	if err != nil {
		return nil, err
	}

	data := url.Values{}
	data.Set("client_id", s.clientID)
	data.Set("client_secret", secret)
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	if s.redirectURI != "" {
		data.Set("redirect_uri", s.redirectURI)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token exchange request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var appleErr appleErrorResponse
		if json.Unmarshal(body, &appleErr) == nil && appleErr.Error != "" {
			s.logger.Warn("Apple token exchange rejected",
				slog.Int("status", resp.StatusCode),
				slog.String("providerError", appleErr.Error))

			return nil, errors.Errorf("token exchange failed: %s", appleErr.Error)
		}

		return nil, errors.Errorf("token exchange failed with status %d", resp.StatusCode)
	}

	var tokenResponse appleTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}
	if tokenResponse.IDToken == "" {
		return nil, errors.New("token response contained no identity token")
	}

	return &service.AppleTokenBundle{
		AccessToken:   tokenResponse.AccessToken,
		RefreshToken:  tokenResponse.RefreshToken,
		IdentityToken: tokenResponse.IDToken,
		ExpiresIn:     tokenResponse.ExpiresIn,
	}, nil
}
