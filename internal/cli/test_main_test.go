package cli

import (
	"fmt"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	tempHome, err := os.MkdirTemp("", "promptpack-home-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp HOME: %v\n", err)
		os.Exit(1)
	}

	oldHome, hadHome := os.LookupEnv("HOME")
	if err := os.Setenv("HOME", tempHome); err != nil {
		fmt.Fprintf(os.Stderr, "failed to set HOME: %v\n", err)
		_ = os.RemoveAll(tempHome)
		os.Exit(1)
	}

	oldConfigHome, hadConfigHome := os.LookupEnv("PROMPTPACK_HOME")
	if err := os.Setenv("PROMPTPACK_HOME", tempHome); err != nil {
		fmt.Fprintf(os.Stderr, "failed to set PROMPTPACK_HOME: %v\n", err)
		_ = os.RemoveAll(tempHome)
		os.Exit(1)
	}

	code := m.Run()

	if hadHome {
		_ = os.Setenv("HOME", oldHome)
	} else {
		_ = os.Unsetenv("HOME")
	}
	if hadConfigHome {
		_ = os.Setenv("PROMPTPACK_HOME", oldConfigHome)
	} else {
		_ = os.Unsetenv("PROMPTPACK_HOME")
	}
	_ = os.RemoveAll(tempHome)

	os.Exit(code)
}
