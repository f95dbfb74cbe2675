// ════════════════════════════════════════════════════════════
// Path: config/google_oauth.go
// Google OAuth Configuration (pro console SSO)
// ════════════════════════════════════════════════════════════

package config

import (
	"context"
	"log"
	"os"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	GoogleOAuthConfig *oauth2.Config
	OIDCVerifier      *oidc.IDTokenVerifier
)

// InitGoogleOAuth initializes Google OAuth configuration
func InitGoogleOAuth() {
	ctx := context.Background()

	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	redirectURL := os.Getenv("GOOGLE_REDIRECT_URL")

	if clientID == "" || clientSecret == "" {
		log.Fatal("❌ GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set in .env")
	}

	if redirectURL == "" {
		redirectURL = "http://localhost:8080/api/v1/pro/users/google/callback"
		log.Printf("⚠️  GOOGLE_REDIRECT_URL not set, using default: %s", redirectURL)
	}

	// Configure OAuth2
	GoogleOAuthConfig = &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	// Setup OIDC provider for ID token verification
	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		log.Fatalf("❌ Failed to create OIDC provider: %v", err)
	}

	OIDCVerifier = provider.Verifier(&oidc.Config{
		ClientID: clientID,
	})

	log.Println("✅ Google OAuth initialized successfully")
}

// GetProFrontendURL returns the pro console URL from environment
func GetProFrontendURL() string {
	urlFromEnv := os.Getenv("PRO_FRONTEND_URL")
	if urlFromEnv == "" {
		defaultURL := "http://localhost:3000"
		log.Printf("⚠️  PRO_FRONTEND_URL not set, using default: %s", defaultURL)
		return defaultURL
	}
	return urlFromEnv
}
