package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short url-safe reference code.
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateOTP returns a numeric one-time code of the given length.
func GenerateOTP(length int) string {
	code, err := gonanoid.Generate("0123456789", length)
	if err != nil {
		return ""
	}
	return code
}
