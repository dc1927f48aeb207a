package random

import (
	"strings"

	"github.com/Yandex-Practicum/go-ftracker/internal/training"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ASCIIString generates random string of uppercase letters and digits, never starting with a digit
func ASCIIString(minLen, maxLen int) string {
	slen := minLen
	if maxLen > minLen {
		slen = source.intn(minLen, maxLen)
	}

	var sb strings.Builder
	for sb.Len() < slen {
		char := letters[source.intn(0, len(letters))]
		if sb.Len() == 0 && '0' <= char && char <= '9' {
			continue
		}
		sb.WriteByte(char)
	}
	return sb.String()
}

// WorkoutCode returns one of the known discriminator codes
func WorkoutCode() string {
	kinds := training.Kinds()
	return kinds[source.intn(0, len(kinds))].Code()
}

// UnknownCode returns a code no workout is registered for
func UnknownCode() string {
	for {
		code := ASCIIString(3, 8)
		if _, ok := training.KindByCode(code); !ok {
			return code
		}
	}
}
