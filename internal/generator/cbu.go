package generator

import (
	"math/rand"
	"strings"
)

// CBULength is the fixed length of a generated CBU.
const CBULength = 22

// GenerateCBU returns a fresh 22-digit numeric string.
func GenerateCBU() string {
	var sb strings.Builder
	sb.Grow(CBULength)
	for i := 0; i < CBULength; i++ {
		sb.WriteByte(byte('0' + rand.Intn(10)))
	}
	return sb.String()
}
