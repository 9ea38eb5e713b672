package nvlm_test

import (
	"testing"

	nvlmapi "github.com/vuvietnguyenit/cudevprop/nvlm"
)

func TestGetDriverVersion(t *testing.T) {
	version, err := nvlmapi.GetDriverVersion()
	if err != nil {
		t.Skipf("Skipping test — NVML not available: %v", err)
	}
	defer nvlmapi.ShutdownNVLM()

	if version == "" {
		t.Errorf("Expected non-empty driver version")
	}
	t.Logf("NVIDIA Driver Version: %s", version)
}
