package modals

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	// Initialize modal constants for tests
	ModalWidth = 52
	ModalInputWidth = 40
	ModalInputCharLimit = 48

	os.Exit(m.Run())
}
