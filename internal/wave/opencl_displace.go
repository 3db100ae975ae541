//go:build opencl

package wave

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

type openCLDisplacer struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	baseXBuf   *cl.MemObject
	baseYBuf   *cl.MemObject
	offsetXBuf *cl.MemObject
	offsetYBuf *cl.MemObject
	capacity   int
	deviceName string

	uploaded *Grid
	baseX    []float32
	baseY    []float32
	offsetX  []float32
	offsetY  []float32
}

const displaceKernelSource = `__kernel void displace(
    const int count,
    const int points,
    const float amplitude,
    const float gap_x,
    const float phase_y,
    const float phase_x,
    __global const float* base_x,
    __global const float* base_y,
    __global float* offset_x,
    __global float* offset_y)
{
    int idx = get_global_id(0);
    if (idx >= count) {
        return;
    }
    int j = idx % points;
    if (j == 0 || j == points - 1) {
        offset_x[idx] = 0.0f;
        offset_y[idx] = 0.0f;
        return;
    }
    float oy = cos(base_x[idx] * 0.01f + phase_y) * amplitude;
    offset_y[idx] = oy;
    offset_x[idx] = sin((base_y[idx] + oy) * 0.008f + phase_x) * gap_x;
}`

// NewOpenCLDisplacer compiles the displacement kernel on the first GPU, or
// failing that the first CPU device, that the ICD loader reports.
func NewOpenCLDisplacer() (Displacer, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	d := &openCLDisplacer{context: context, deviceName: device.Name()}
	d.queue, err = context.CreateCommandQueue(device, 0)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	d.program, err = context.CreateProgramWithSource([]string{displaceKernelSource})
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := d.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		d.Close()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	d.kernel, err = d.program.CreateKernel("displace")
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	return d, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

// ensureBuffers grows the device buffers to hold count points.
func (d *openCLDisplacer) ensureBuffers(count int) error {
	if count <= d.capacity {
		return nil
	}
	d.releaseBuffers()
	byteSize := count * int(unsafe.Sizeof(float32(0)))
	var err error
	if d.baseXBuf, err = d.context.CreateEmptyBuffer(cl.MemReadOnly, byteSize); err != nil {
		return fmt.Errorf("allocating base x buffer: %w", err)
	}
	if d.baseYBuf, err = d.context.CreateEmptyBuffer(cl.MemReadOnly, byteSize); err != nil {
		return fmt.Errorf("allocating base y buffer: %w", err)
	}
	if d.offsetXBuf, err = d.context.CreateEmptyBuffer(cl.MemWriteOnly, byteSize); err != nil {
		return fmt.Errorf("allocating offset x buffer: %w", err)
	}
	if d.offsetYBuf, err = d.context.CreateEmptyBuffer(cl.MemWriteOnly, byteSize); err != nil {
		return fmt.Errorf("allocating offset y buffer: %w", err)
	}
	d.capacity = count
	d.uploaded = nil
	return nil
}

// upload copies base coordinates to the device once per grid epoch.
func (d *openCLDisplacer) upload(g *Grid, count int) error {
	if d.uploaded == g && len(d.baseX) == count {
		return nil
	}
	d.baseX = resizeFloats(d.baseX, count)
	d.baseY = resizeFloats(d.baseY, count)
	d.offsetX = resizeFloats(d.offsetX, count)
	d.offsetY = resizeFloats(d.offsetY, count)
	idx := 0
	for _, line := range g.Lines {
		for _, pt := range line {
			d.baseX[idx] = float32(pt.BaseX)
			d.baseY[idx] = float32(pt.BaseY)
			idx++
		}
	}
	if _, err := d.queue.EnqueueWriteBufferFloat32(d.baseXBuf, false, 0, d.baseX, nil); err != nil {
		return fmt.Errorf("writing base x buffer: %w", err)
	}
	if _, err := d.queue.EnqueueWriteBufferFloat32(d.baseYBuf, false, 0, d.baseY, nil); err != nil {
		return fmt.Errorf("writing base y buffer: %w", err)
	}
	d.uploaded = g
	return nil
}

func resizeFloats(buf []float32, n int) []float32 {
	if cap(buf) < n {
		return make([]float32, n)
	}
	return buf[:n]
}

func (d *openCLDisplacer) Displace(g *Grid, time, amplitude float64) error {
	points := g.PointsPerLine()
	count := len(g.Lines) * points
	if count == 0 {
		return nil
	}
	if err := d.ensureBuffers(count); err != nil {
		return err
	}
	if err := d.upload(g, count); err != nil {
		return err
	}
	// Reduce the temporal phases on the host so float32 keeps its precision
	// for long-running loops.
	phaseY := float32(math.Mod(time*waveSpeedY, 2*math.Pi))
	phaseX := float32(math.Mod(time*waveSpeedX, 2*math.Pi))
	if err := d.kernel.SetArgs(
		int32(count),
		int32(points),
		float32(amplitude),
		float32(g.GapX),
		phaseY,
		phaseX,
		d.baseXBuf,
		d.baseYBuf,
		d.offsetXBuf,
		d.offsetYBuf,
	); err != nil {
		return fmt.Errorf("setting kernel arguments: %w", err)
	}
	if _, err := d.queue.EnqueueNDRangeKernel(d.kernel, nil, []int{count}, nil, nil); err != nil {
		return fmt.Errorf("enqueueing kernel: %w", err)
	}
	if _, err := d.queue.EnqueueReadBufferFloat32(d.offsetXBuf, true, 0, d.offsetX, nil); err != nil {
		return fmt.Errorf("reading offset x buffer: %w", err)
	}
	if _, err := d.queue.EnqueueReadBufferFloat32(d.offsetYBuf, true, 0, d.offsetY, nil); err != nil {
		return fmt.Errorf("reading offset y buffer: %w", err)
	}
	idx := 0
	for _, line := range g.Lines {
		for j := range line {
			line[j].OffsetX = float64(d.offsetX[idx])
			line[j].OffsetY = float64(d.offsetY[idx])
			idx++
		}
	}
	return nil
}

func (d *openCLDisplacer) Name() string {
	return "opencl (" + d.deviceName + ")"
}

func (d *openCLDisplacer) releaseBuffers() {
	for _, buf := range []**cl.MemObject{&d.baseXBuf, &d.baseYBuf, &d.offsetXBuf, &d.offsetYBuf} {
		if *buf != nil {
			(*buf).Release()
			*buf = nil
		}
	}
	d.capacity = 0
}

func (d *openCLDisplacer) Close() {
	d.releaseBuffers()
	if d.kernel != nil {
		d.kernel.Release()
		d.kernel = nil
	}
	if d.program != nil {
		d.program.Release()
		d.program = nil
	}
	if d.queue != nil {
		d.queue.Release()
		d.queue = nil
	}
	if d.context != nil {
		d.context.Release()
		d.context = nil
	}
}
