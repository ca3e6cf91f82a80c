package services

import (
	"context"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// GoogleOAuthHandlerSvcFacade handles the Google sign-in flow used by
// parents who prefer not to manage a separate password.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a CSRF token for the OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo uses the access token to get user information from Google.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateGoogleIDToken validates an ID token received from Google.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
