package port

import "context"

// SocialAuthClaims holds identity claims extracted from a social provider token.
type SocialAuthClaims struct {
	Subject       string
	Email         string
	EmailVerified bool
	FullName      string
}

// SocialTokenVerifier validates an ID token issued by a social auth provider.
type SocialTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*SocialAuthClaims, error)
	Provider() string
}
