package utils

import (
	"math/rand/v2"
	"strings"
)

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateCode returns a short uppercase base-36 code of the kind mailed
// out for account confirmation and password recovery. It deliberately
// uses a non-cryptographic source; these codes are convenience tokens,
// not secrets the rest of the system ever checks.
func GenerateCode(length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(codeAlphabet[rand.IntN(len(codeAlphabet))])
	}
	return b.String()
}
