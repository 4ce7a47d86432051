package uid

import "github.com/google/uuid"

// GenerateSessionID returns a random (version 4) UUID identifying one board.
func GenerateSessionID() string {
	return uuid.NewString()
}

// IsSessionID reports whether id has the shape GenerateSessionID produces.
func IsSessionID(id string) bool {
	parsed, err := uuid.Parse(id)
	return err == nil && parsed.Version() == 4
}
