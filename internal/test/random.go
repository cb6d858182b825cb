package test

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const credentialAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Credentials is a throwaway account used by registration tests.
type Credentials struct {
	Username string
	Email    string
	Password string
}

// RandomCredentials returns a unique-enough account with a lowercase email.
func RandomCredentials() Credentials {
	name := randomString(6, 12)
	return Credentials{
		Username: name,
		Email:    strings.ToLower(name) + "@" + strings.ToLower(randomString(4, 8)) + ".test",
		Password: randomString(12, 24),
	}
}

func randomString(minLen, maxLen int) string {
	rngMu.Lock()
	defer rngMu.Unlock()

	length := minLen + rng.Intn(maxLen-minLen+1)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = credentialAlphabet[rng.Intn(len(credentialAlphabet))]
	}
	return string(buf)
}
