package webhook

import "crypto/subtle"

// SignatureHeader carries the provider's signature on every inbound request.
const SignatureHeader = "X-PATHAO-Signature"

// VerifyFunc checks an inbound request's authenticity. The dispatcher accepts
// any implementation, so the scheme can change without touching dispatch.
type VerifyFunc func(signature, secret string, body []byte) error

var _ VerifyFunc = Verify

// Verify is the default scheme: the provider sends the shared secret itself
// as the signature. The comparison is constant time so a mismatch leaks no
// position information.
//
// TODO(webhook): replace with the provider's HMAC construction once their
// signing algorithm is published; callers plug it in via WithVerifyFunc.
func Verify(signature, secret string, _ []byte) error {
	if signature == "" {
		return &WebhookError{Message: "Missing " + SignatureHeader + " header"}
	}
	if secret == "" {
		return &WebhookError{Message: "webhook secret is not configured"}
	}

	if len(signature) != len(secret) {
		return &WebhookError{Message: "webhook signature length mismatch"}
	}
	if subtle.ConstantTimeCompare([]byte(signature), []byte(secret)) != 1 {
		return &WebhookError{Message: "invalid webhook signature"}
	}
	return nil
}
