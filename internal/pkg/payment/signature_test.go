package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureIsDeterministic(t *testing.T) {
	sig1 := Signature("order_abc", "pay_xyz", "secret")
	sig2 := Signature("order_abc", "pay_xyz", "secret")

	require.NotEmpty(t, sig1)
	assert.Equal(t, sig1, sig2)
	assert.Len(t, sig1, 64) // hex-encoded SHA-256
}

func TestVerifySignatureAcceptsValid(t *testing.T) {
	sig := Signature("order_abc", "pay_xyz", "secret")
	assert.True(t, VerifySignature("order_abc", "pay_xyz", sig, "secret"))
}

func TestVerifySignatureRejectsTampering(t *testing.T) {
	sig := Signature("order_abc", "pay_xyz", "secret")

	assert.False(t, VerifySignature("order_abd", "pay_xyz", sig, "secret"), "changed order id")
	assert.False(t, VerifySignature("order_abc", "pay_xyy", sig, "secret"), "changed payment id")
	assert.False(t, VerifySignature("order_abc", "pay_xyz", sig, "other"), "changed secret")

	// Flip a single character of the claimed signature.
	mutated := []byte(sig)
	if mutated[0] == 'a' {
		mutated[0] = 'b'
	} else {
		mutated[0] = 'a'
	}
	assert.False(t, VerifySignature("order_abc", "pay_xyz", string(mutated), "secret"))
}

func TestVerifySignatureRejectsEmptyClaim(t *testing.T) {
	assert.False(t, VerifySignature("order_abc", "pay_xyz", "", "secret"))
}

func TestSignatureFieldBoundary(t *testing.T) {
	// Moving a character across the separator must change the signature.
	sig1 := Signature("order_a", "bpay", "secret")
	sig2 := Signature("order_ab", "pay", "secret")
	assert.NotEqual(t, sig1, sig2)
}
