package cuda

import "fmt"

// Device is a driver device handle (CUdevice).
type Device int32

func Init() error {
	if err := cuInit().Err(); err != nil {
		return fmt.Errorf("cuInit failed: %w", err)
	}
	return nil
}

// DriverVersion returns the driver API version, e.g. 12040 for 12.4.
func DriverVersion() (int, error) {
	v, r := cuDriverGetVersion()
	if err := r.Err(); err != nil {
		return 0, fmt.Errorf("cuDriverGetVersion failed: %w", err)
	}
	return v, nil
}

func DeviceGet(ordinal int) (Device, error) {
	if ordinal < 0 {
		return 0, fmt.Errorf("cuDeviceGet(%d): %w", ordinal, ErrorInvalidDevice)
	}
	dev, r := cuDeviceGet(ordinal)
	if err := r.Err(); err != nil {
		return 0, fmt.Errorf("cuDeviceGet(%d): %w", ordinal, err)
	}
	return dev, nil
}

// DeviceGetProperties fills prop in place for dev.
func DeviceGetProperties(prop *DeviceProperties, dev Device) error {
	if prop == nil {
		return fmt.Errorf("cuDeviceGetProperties: %w", ErrorInvalidValue)
	}
	if err := cuDeviceGetProperties(prop, dev).Err(); err != nil {
		return fmt.Errorf("cuDeviceGetProperties(device=%d): %w", dev, err)
	}
	return nil
}

// QueryDeviceProperties initializes the driver and returns the properties
// of the device at ordinal.
func QueryDeviceProperties(ordinal int) (*DeviceProperties, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	dev, err := DeviceGet(ordinal)
	if err != nil {
		return nil, err
	}
	prop := NewDeviceProperties()
	if err := DeviceGetProperties(prop, dev); err != nil {
		return nil, err
	}
	return prop, nil
}
