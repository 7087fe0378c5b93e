package orders

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

const suffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber builds a human-shareable identifier like
// ORD-LZ3K9X2M4P1A-7GQ2F: a base-36 nanosecond timestamp plus a
// 5-character random suffix. The timestamp alone separates successive
// calls; the suffix covers clock ties and makes numbers hard to guess.
func GenerateOrderNumber() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixNano(), 36))
	return "ORD-" + ts + "-" + randomSuffix(5)
}

func randomSuffix(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform entropy source is
		// broken; fall back to the timestamp already in the number.
		return strings.Repeat("0", n)
	}
	for i, b := range buf {
		buf[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}
	return string(buf)
}
