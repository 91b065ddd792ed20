package token

import "time"

// Maker is the contract for anything that can create and verify tokens.
// It lets the rest of the application swap token implementations without
// touching call sites.
type Maker interface {
	CreateToken(username string, duration time.Duration) (string, error)

	VerifyToken(token string) (*Payload, error)
}
