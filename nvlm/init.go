package nvlm

import (
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

func InitNVLM() error {
	ret := nvml.Init()
	if ret != nvml.SUCCESS {
		return fmt.Errorf("nvml init failed: %s", nvml.ErrorString(ret))
	}
	return nil
}

func ShutdownNVLM() {
	_ = nvml.Shutdown()
}

// GetDriverVersion initializes NVML and returns the installed NVIDIA
// driver version. Callers must call ShutdownNVLM when it succeeds.
func GetDriverVersion() (string, error) {
	if err := InitNVLM(); err != nil {
		return "", err
	}
	version, ret := nvml.SystemGetDriverVersion()
	if ret != nvml.SUCCESS {
		ShutdownNVLM()
		return "", fmt.Errorf("nvml get driver version failed: %s", nvml.ErrorString(ret))
	}
	return version, nil
}
