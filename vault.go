package nivesh

import "golang.org/x/crypto/bcrypt"

// The credential vault stores only one-way digests, never plaintext. Both
// login passwords and numeric PINs go through the same primitives; PIN shape
// (exactly four digits) is enforced by the caller, not here.

// HashSecret returns a one-way digest of the secret.
func HashSecret(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifySecret reports whether the secret matches the digest.
func VerifySecret(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}

// Biometric is the platform biometric-assertion collaborator. Authenticate
// returns true when the device owner confirmed their identity. The tracker
// never performs biometric verification itself; it only records whether a
// user opted in.
type Biometric interface {
	IsSupported() bool
	Authenticate() (bool, error)
}

// NoBiometric is the fallback collaborator on platforms without a biometric
// sensor: never supported, never confirms.
type NoBiometric struct{}

func (NoBiometric) IsSupported() bool           { return false }
func (NoBiometric) Authenticate() (bool, error) { return false, nil }
