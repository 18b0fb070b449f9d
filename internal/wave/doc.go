// Package wave holds the pure math behind the background: truncated
// square-wave Fourier sums, the four-point curve sampler and the cyclic
// colour spectrum.
//
// x positions use the sine series and y positions the cosine series, so each
// curve traces a piece of a Lissajous-like closed path.
package wave
