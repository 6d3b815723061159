package random

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
)

var ErrEmpty = errors.New("cannot pick from an empty set")

// Index returns a uniformly distributed integer in [0, n) from crypto/rand.
func Index(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmpty
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random number: %w", err)
	}
	return int(v.Int64()), nil
}

// Token returns n random bytes hex encoded.
func Token(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
