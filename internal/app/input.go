package app

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInputUnavailable is returned when the text to search cannot be read.
var ErrInputUnavailable = errors.New("input unavailable")

// ReadFile reads the whole file at path into memory.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	return string(data), nil
}

// ReadAll drains r into memory. name is used in error messages.
func ReadAll(r io.Reader, name string) (string, error) {
	if r == nil {
		return "", fmt.Errorf("%w: %s: no reader", ErrInputUnavailable, name)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInputUnavailable, name, err)
	}
	return string(data), nil
}
