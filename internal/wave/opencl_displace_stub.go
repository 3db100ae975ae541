//go:build !opencl

package wave

import "errors"

// NewOpenCLDisplacer reports that the binary was built without OpenCL.
func NewOpenCLDisplacer() (Displacer, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}
