package example

import (
	"os"
	"testing"
)

func TestOne(t *testing.T) {
	one()
}

func TestTwo(t *testing.T) {
	two()
}

func TestThree(t *testing.T) {
	magnitudes := three()
	if len(magnitudes) == 0 {
		t.Fatal("expected non-empty spectrum")
	}
}

func TestFour(t *testing.T) {
	if os.Getenv("PATCH_PORTAUDIO") == "" {
		t.Skip("Skip example.TestFour")
	}
	four()
}
