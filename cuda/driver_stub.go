//go:build !cuda

package cuda

// Available reports whether the binary was built against libcuda.
// Build with -tags cuda to enable the driver calls.
const Available = false

func cuInit() Result { return ErrorNotSupported }

func cuDriverGetVersion() (int, Result) { return 0, ErrorNotSupported }

func cuDeviceGet(int) (Device, Result) { return 0, ErrorNotSupported }

func cuDeviceGetProperties(*DeviceProperties, Device) Result { return ErrorNotSupported }
