package cuda

import (
	"fmt"
	"strconv"
	"strings"
)

const formattedHeader = "Device properties:"

// DeviceProperties holds the legacy device properties reported by
// cuDeviceGetProperties. Field order and widths follow C CUdevprop so
// the driver can write into it directly.
type DeviceProperties struct {
	MaxThreadsPerBlock  int32    `json:"maxThreadsPerBlock"`
	MaxThreadsDim       [3]int32 `json:"maxThreadsDim"`
	MaxGridSize         [3]int32 `json:"maxGridSize"`
	SharedMemPerBlock   int32    `json:"sharedMemPerBlock"`   // bytes
	TotalConstantMemory int32    `json:"totalConstantMemory"` // bytes
	SIMDWidth           int32    `json:"SIMDWidth"`           // warp size
	MemPitch            int32    `json:"memPitch"`
	RegsPerBlock        int32    `json:"regsPerBlock"`
	ClockRate           int32    `json:"clockRate"` // kHz
	TextureAlign        int32    `json:"textureAlign"`
}

func NewDeviceProperties() *DeviceProperties {
	return &DeviceProperties{}
}

// Field is one name=value entry of a description.
type Field struct {
	Name  string
	Value string
}

// Fields returns the description entries in output order. regsPerBlock
// is listed twice, matching the driver wrapper's historical output.
func (p *DeviceProperties) Fields() []Field {
	return []Field{
		{"maxThreadsPerBlock", itoa(p.MaxThreadsPerBlock)},
		{"maxThreadsDim", dim3(p.MaxThreadsDim)},
		{"maxGridSize", dim3(p.MaxGridSize)},
		{"sharedMemPerBlock", itoa(p.SharedMemPerBlock)},
		{"totalConstantMemory", itoa(p.TotalConstantMemory)},
		{"regsPerBlock", itoa(p.RegsPerBlock)},
		{"SIMDWidth", itoa(p.SIMDWidth)},
		{"memPitch", itoa(p.MemPitch)},
		{"regsPerBlock", itoa(p.RegsPerBlock)},
		{"clockRate", itoa(p.ClockRate)},
		{"textureAlign", itoa(p.TextureAlign)},
	}
}

// CompactDescription renders every field as name=value on one line,
// separated by commas.
func (p *DeviceProperties) CompactDescription() string {
	return p.join(",")
}

// FormattedDescription renders the same entries as CompactDescription,
// one per indented line under a header.
func (p *DeviceProperties) FormattedDescription() string {
	return formattedHeader + "\n    " + p.join("\n    ")
}

func (p *DeviceProperties) String() string {
	return "CUdevprop[" + p.CompactDescription() + "]"
}

func (p *DeviceProperties) join(sep string) string {
	var sb strings.Builder
	for i, f := range p.Fields() {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(f.Name)
		sb.WriteByte('=')
		sb.WriteString(f.Value)
	}
	return sb.String()
}

func itoa(v int32) string {
	return strconv.Itoa(int(v))
}

func dim3(d [3]int32) string {
	return fmt.Sprintf("[%d, %d, %d]", d[0], d[1], d[2])
}
