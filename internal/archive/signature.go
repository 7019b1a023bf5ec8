package archive

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// VerifySignature checks a device's ed25519 signature. The device signs the
// raw 32-byte content digest (the manifest cannot sign its own bytes, so
// the signature covers the same canonical content the checksum does).
//
// contentChecksum is the lowercase sha256 hex digest, signatureB64 the
// manifest's base64 signature, publicKeyB64 the configured base64 key.
func VerifySignature(contentChecksum, signatureB64, publicKeyB64 string) (bool, error) {
	key, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return false, fmt.Errorf("signature: decode public key: %w", err)
	}
	if len(key) != ed25519.PublicKeySize {
		return false, fmt.Errorf("signature: public key is %d bytes, want %d", len(key), ed25519.PublicKeySize)
	}
	sig, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return false, fmt.Errorf("signature: decode signature: %w", err)
	}
	digest, err := hex.DecodeString(contentChecksum)
	if err != nil {
		return false, fmt.Errorf("signature: decode content checksum: %w", err)
	}
	return ed25519.Verify(ed25519.PublicKey(key), digest, sig), nil
}

// SignContent produces the base64 device signature over a content digest.
// Only exporters (tests, the seed tool) sign; the server verifies.
func SignContent(contentChecksum string, privateKey ed25519.PrivateKey) (string, error) {
	digest, err := hex.DecodeString(contentChecksum)
	if err != nil {
		return "", fmt.Errorf("signature: decode content checksum: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ed25519.Sign(privateKey, digest)), nil
}
