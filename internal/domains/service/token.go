package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/service TokenGenerator

import (
	"crypto/rand"
	"math/big"
)

// TokenGenerator produces verification tokens. Pulled behind an interface so
// tests can pin token values.
type TokenGenerator interface {
	Generate() string
}

const (
	tokenPrefix    = "fastsubmit-verify-"
	tokenAlphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
	tokenRandChars = 24
)

type RandomTokenGenerator struct{}

// Generate returns a namespaced token with 24 characters of crypto/rand
// base36 randomness, enough that collisions are implausible at any realistic
// registration volume.
func (RandomTokenGenerator) Generate() string {
	buf := make([]byte, tokenRandChars)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		buf[i] = tokenAlphabet[n.Int64()]
	}
	return tokenPrefix + string(buf)
}
