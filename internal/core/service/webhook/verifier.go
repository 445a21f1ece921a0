package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/badalkr2004/lms-microservices-sub000/internal/core/port"
)

// HMACVerifier checks provider webhook signatures. The provider sends a
// header of the form "t=<unix>,v1=<hex>" where the hex digest is
// HMAC-SHA256 over "<unix>.<raw body>" with the shared secret. Multiple
// v1 entries may appear during secret rotation; any match passes.
type HMACVerifier struct {
	secret []byte
}

// NewHMACVerifier creates a verifier bound to the shared webhook secret
func NewHMACVerifier(secret string) port.SignatureVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

// Verify reports whether the signature header authenticates the payload.
// Malformed input is verification failure, never a panic.
func (v *HMACVerifier) Verify(payload []byte, signatureHeader string) bool {
	if len(v.secret) == 0 || signatureHeader == "" {
		return false
	}

	var timestamp string
	var signatures [][]byte

	for _, element := range strings.Split(signatureHeader, ",") {
		parts := strings.SplitN(strings.TrimSpace(element), "=", 2)
		if len(parts) != 2 {
			continue
		}
		switch parts[0] {
		case "t":
			timestamp = parts[1]
		case "v1":
			sig, err := hex.DecodeString(parts[1])
			if err != nil {
				continue
			}
			signatures = append(signatures, sig)
		}
	}

	if timestamp == "" || len(signatures) == 0 {
		return false
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := mac.Sum(nil)

	for _, sig := range signatures {
		if hmac.Equal(expected, sig) {
			return true
		}
	}
	return false
}
