package perf

import (
	"golang.org/x/sys/unix"

	"textclean/internal/logging"
)

// gpuDevices are the device nodes whose presence indicates a usable GPU.
var gpuDevices = []string{
	"/dev/nvidiactl",
	"/dev/nvidia0",
	"/dev/dri/renderD128",
}

func probeGPU() bool {
	for _, dev := range gpuDevices {
		if unix.Access(dev, unix.R_OK|unix.W_OK) == nil {
			return true
		}
	}
	return false
}

// GPUAvailable reports whether GPU processing is enabled in configuration
// and a GPU device node is accessible.
func (c *Cleaner) GPUAvailable() bool {
	return c.enableGPU && c.gpuProbe()
}

// CleanTextGPU cleans text on the GPU path when one is available. No step
// has a GPU kernel yet, so the result always equals CleanText.
func (c *Cleaner) CleanTextGPU(text string) string {
	c.logger.Debug("gpu cleaning requested", logging.Bool("gpu_available", c.GPUAvailable()))
	return c.pipeline.Clean(text)
}
