// Package roomcode generates the identifiers sessions are stored under.
package roomcode

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	// Length of a room code shown in the lobby.
	Length = 6

	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	space    = 36 * 36 * 36 * 36 * 36 * 36
)

// GenerateGameID - generates a short upper-case base36 room code.
func GenerateGameID() string {
	id := uuid.New()

	n := binary.BigEndian.Uint64(id[8:]) % space
	code := strings.ToUpper(strconv.FormatUint(n, 36))

	return strings.Repeat("0", Length-len(code)) + code
}

// GenerateNewSessionID - generates a new unique sessionID.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// IsGameID reports whether s looks like a room code.
func IsGameID(s string) bool {
	if len(s) != Length {
		return false
	}

	for _, r := range s {
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}

	return true
}
