package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a short random identifier. The alphabet and size
// are constant, so generation cannot fail.
func GenerateID() string {
	return gonanoid.MustGenerate(characters, 12)
}
