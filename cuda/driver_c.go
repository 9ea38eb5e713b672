//go:build cuda

package cuda

/*
#cgo LDFLAGS: -lcuda
#include <cuda.h>
*/
import "C"
import "unsafe"

// Available reports whether the binary was built against libcuda.
const Available = true

// cuDeviceGetProperties writes straight into DeviceProperties, so both
// layouts must have the same size.
var (
	_ [unsafe.Sizeof(C.CUdevprop{}) - unsafe.Sizeof(DeviceProperties{})]byte
	_ [unsafe.Sizeof(DeviceProperties{}) - unsafe.Sizeof(C.CUdevprop{})]byte
)

func cuInit() Result {
	return Result(C.cuInit(0))
}

func cuDriverGetVersion() (int, Result) {
	var v C.int
	r := Result(C.cuDriverGetVersion(&v))
	return int(v), r
}

func cuDeviceGet(ordinal int) (Device, Result) {
	var dev C.CUdevice
	r := Result(C.cuDeviceGet(&dev, C.int(ordinal)))
	return Device(dev), r
}

func cuDeviceGetProperties(prop *DeviceProperties, dev Device) Result {
	return Result(C.cuDeviceGetProperties((*C.CUdevprop)(unsafe.Pointer(prop)), C.CUdevice(dev)))
}
