// Package token implements the bearer identity tokens that gate every
// request.
//
// Tokens are HMAC-SHA256 signed JWTs carrying a fixed issuer, the subject
// email, an issued-at and an expiry. They are stateless: there is no
// revocation list, a token simply dies at its expiry.
//
//	svc := token.NewService(key, 24*time.Hour)
//	tok, _ := svc.Issue("alice@example.com")
//	claims, err := svc.Verify(tok)
//
// Verify collapses every failure mode into ErrInvalidToken; callers are
// never told whether a token was malformed, expired or forged.
package token
