//go:build !unix

package main

import (
	"os"

	"github.com/pkg/errors"
)

// Runtime-level output such as panics still goes to the original stderr here.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "open stdio log")
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
