package main

import (
	"os"
	"testing"
)

func TestAppStarts(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"isolet", "help"}
	main()
	if err := recover(); err != nil {
		t.Errorf("App failed to start: %v", err)
	}
}
