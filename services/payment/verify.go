package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// ExpectedSignature recomputes the gateway checkout signature: HMAC-SHA256
// over "orderID|paymentID" keyed with the gateway secret, hex-encoded.
func ExpectedSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether the client-submitted signature matches the
// recomputed one, in constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	expected := ExpectedSignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
