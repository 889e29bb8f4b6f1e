package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signature computes the gateway callback signature for an order/payment
// pair: lowercase hex of HMAC-SHA256 over "orderID|paymentID" keyed with
// the shared gateway secret. The concatenation uses a literal pipe; this
// must match the gateway's callback contract exactly.
func Signature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether the claimed signature is authentic for
// the given order/payment pair. The comparison is constant time; the set
// of accepted values is exactly the expected hex digest.
func VerifySignature(orderID, paymentID, claimed, secret string) bool {
	expected := Signature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(claimed))
}
