package repository

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-variants/internal/game"
)

const gameKeyPrefix = "game:"

func gameKey(id string) string {
	return gameKeyPrefix + id
}

func encodeSession(session *game.Session) ([]byte, error) {
	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("could not marshal game: %w", err)
	}

	return data, nil
}

// decodeSession restores a session and rejects states no legal play can reach.
func decodeSession(data []byte) (*game.Session, error) {
	var session game.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	if err := session.Verify(); err != nil {
		return nil, fmt.Errorf("stored game is corrupt: %w", err)
	}

	return &session, nil
}
