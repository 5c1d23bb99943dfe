// Package kernel defines the contracts between the concatenation core and
// the compute backends that execute it: macro-style build options, the
// compiler and command-queue interfaces, argument packing for 4D tensor
// slices, and a variant cache in front of any compiler.
package kernel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// BuildOptions is the macro-style key/value set a kernel variant is compiled
// with. Keys are macro names (DATA_TYPE, VEC_SIZE, ...), values their
// textual definitions.
type BuildOptions struct {
	defs map[string]string
}

// NewBuildOptions returns an empty option set.
func NewBuildOptions() *BuildOptions {
	return &BuildOptions{defs: make(map[string]string)}
}

// Define sets macro name to value, overwriting any previous definition.
func (o *BuildOptions) Define(name, value string) {
	o.defs[name] = value
}

// DefineInt sets macro name to a decimal integer value.
func (o *BuildOptions) DefineInt(name string, value int) {
	o.Define(name, strconv.Itoa(value))
}

// DefineFloat sets macro name to a full-precision float value.
func (o *BuildOptions) DefineFloat(name string, value float32) {
	o.Define(name, strconv.FormatFloat(float64(value), 'g', -1, 32))
}

// Lookup returns the value of macro name and whether it is defined.
func (o *BuildOptions) Lookup(name string) (string, bool) {
	v, ok := o.defs[name]
	return v, ok
}

// Int returns macro name parsed as an integer.
func (o *BuildOptions) Int(name string) (int, error) {
	v, ok := o.defs[name]
	if !ok {
		return 0, fmt.Errorf("kernel: build option %s not defined", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("kernel: build option %s=%q is not an integer", name, v)
	}
	return n, nil
}

// Float returns macro name parsed as a float32.
func (o *BuildOptions) Float(name string) (float32, error) {
	v, ok := o.defs[name]
	if !ok {
		return 0, fmt.Errorf("kernel: build option %s not defined", name)
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return 0, fmt.Errorf("kernel: build option %s=%q is not a float", name, v)
	}
	return float32(f), nil
}

// Options returns the definitions as sorted "-DNAME=VALUE" strings.
func (o *BuildOptions) Options() []string {
	opts := make([]string, 0, len(o.defs))
	for name, value := range o.defs {
		opts = append(opts, "-D"+name+"="+value)
	}
	sort.Strings(opts)
	return opts
}

// Key returns a deterministic string identifying this option set, suitable
// for cache keys.
func (o *BuildOptions) Key() string {
	return strings.Join(o.Options(), " ")
}
