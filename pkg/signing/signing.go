package signing

import (
	"crypto/sha1"
	"encoding/hex"
)

// Signer produces the token that ties the survey form to the email it
// was issued for.
//
// The digest is SHA1(email || key). It is not an HMAC and only detects
// casual tampering with the hidden email field.
type Signer struct {
	key []byte
}

func NewSigner(key string) *Signer {
	return &Signer{key: []byte(key)}
}

func (s *Signer) Sign(email string) string {
	h := sha1.New()
	h.Write([]byte(email))
	h.Write(s.key)
	return hex.EncodeToString(h.Sum(nil))
}

// Verify reports whether signature was issued for email.
func (s *Signer) Verify(email, signature string) bool {
	return s.Sign(email) == signature
}
