package table

import (
	"fmt"
	"strings"
)

// GameType is the format being trained
type GameType string

// game types
const (
	Cash GameType = "CASH"
	MTT  GameType = "MTT"
)

// GameTypeFromString returns the game type, case-insensitive
func GameTypeFromString(s string) (GameType, error) {
	gt := GameType(strings.ToUpper(strings.TrimSpace(s)))
	if !gt.IsValid() {
		return "", invalidArgument("unknown game type: %s", s)
	}

	return gt, nil
}

// IsValid returns true for known game types
func (g GameType) IsValid() bool {
	return g == Cash || g == MTT
}

func (g GameType) String() string {
	switch g {
	case Cash:
		return "Cash Game"
	case MTT:
		return "Tournament"
	}

	panic(fmt.Sprintf("unknown game type: %s", string(g)))
}

// Settings describe the table a user wants to practice at
type Settings struct {
	GameType     GameType `json:"gameType" yaml:"gameType"`
	PlayerCount  int      `json:"playerCount" yaml:"playerCount"`
	UserPosition Position `json:"userPosition" yaml:"userPosition"`
	BigBlinds    int      `json:"bigBlinds" yaml:"bigBlinds"`
}

// Validate returns an error matching ErrInvalidArgument if the settings cannot be dealt
func (s Settings) Validate() error {
	if !s.GameType.IsValid() {
		return invalidArgument("unknown game type: %s", string(s.GameType))
	}

	if s.PlayerCount < MinPlayers || s.PlayerCount > MaxPlayers {
		return PlayerCountError{
			Min: MinPlayers,
			Max: MaxPlayers,
			Got: s.PlayerCount,
		}
	}

	if !s.UserPosition.SeatedAt(s.PlayerCount) {
		return PositionError{
			Position:    s.UserPosition,
			PlayerCount: s.PlayerCount,
		}
	}

	if s.BigBlinds <= 0 {
		return invalidArgument("stack must be greater than zero, got %d big blinds", s.BigBlinds)
	}

	return nil
}

// IsHeadsUp returns true for two-player tables
func (s Settings) IsHeadsUp() bool {
	return s.PlayerCount == 2
}
