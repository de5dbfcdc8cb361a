package keys

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// NewPair generates key material for a decentralized identity: a random
// public key string and the hex SHA-256 of the private half. Only the hash
// is ever stored; custody of the private key stays with the client.
func NewPair() (publicKey, privateKeyHash string, err error) {
	pub := make([]byte, 32)
	if _, err := rand.Read(pub); err != nil {
		return "", "", fmt.Errorf("generate public key: %w", err)
	}
	priv := make([]byte, 32)
	if _, err := rand.Read(priv); err != nil {
		return "", "", fmt.Errorf("generate private key: %w", err)
	}
	sum := sha256.Sum256(priv)
	return "pub_" + hex.EncodeToString(pub), hex.EncodeToString(sum[:]), nil
}
