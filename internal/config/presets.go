package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownPreset indicates a preset name that is neither built in nor loaded.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// Options are the recognised construction options. Nil fields are filled
// with randomized defaults when the background is built.
type Options struct {
	Count       *int     `yaml:"count,omitempty"`
	Frequency   *float64 `yaml:"frequency,omitempty"`
	XAmplitude  *float64 `yaml:"xAmplitude,omitempty"`
	YAmplitude  *float64 `yaml:"yAmplitude,omitempty"`
	XMultiplier *float64 `yaml:"xMultiplier,omitempty"`
	YMultiplier *float64 `yaml:"yMultiplier,omitempty"`
	Color       *float64 `yaml:"color,omitempty"`
	Thickness   *float64 `yaml:"thickness,omitempty"`
}

// Fixed builds Options with every field set.
func Fixed(count int, frequency, xAmp, yAmp, xMul, yMul, color, thickness float64) Options {
	return Options{
		Count:       &count,
		Frequency:   &frequency,
		XAmplitude:  &xAmp,
		YAmplitude:  &yAmp,
		XMultiplier: &xMul,
		YMultiplier: &yMul,
		Color:       &color,
		Thickness:   &thickness,
	}
}

// Presets maps names to option sets.
type Presets map[string]Options

// Builtin returns the presets shipped with the application. "random" leaves
// every option unset.
func Builtin() Presets {
	return Presets{
		"index":  Fixed(81, 10, 1798, 1571, 14, 11, 5, 97),
		"login":  Fixed(91, 3, 1346, 903, 7, 14, 1985, 53),
		"signup": Fixed(79, 7, 2066, 1165, 2, 13, 415, 101),
		"random": {},
	}
}

// Lookup returns the named preset.
func (p Presets) Lookup(name string) (Options, error) {
	o, ok := p[name]
	if !ok {
		return Options{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return o, nil
}

// Names lists preset names in sorted order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a copy of p with other's entries added, replacing duplicates.
func (p Presets) Merge(other Presets) Presets {
	out := make(Presets, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// DecodePresets reads a YAML document mapping preset names to options:
//
//	calm:
//	  count: 40
//	  frequency: 2
func DecodePresets(r io.Reader) (Presets, error) {
	var p Presets
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Presets{}, nil
		}
		return nil, fmt.Errorf("config: decode presets: %w", err)
	}
	if p == nil {
		p = Presets{}
	}
	return p, nil
}

// LoadPresets reads a preset file and merges it over the built-in presets.
func LoadPresets(path string) (Presets, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open presets: %w", err)
	}
	defer f.Close()

	loaded, err := DecodePresets(f)
	if err != nil {
		return nil, err
	}
	return Builtin().Merge(loaded), nil
}

// EncodePresets writes p as YAML.
func EncodePresets(w io.Writer, p Presets) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("config: encode presets: %w", err)
	}
	return enc.Close()
}
