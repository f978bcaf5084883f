// Package convolve runs fixed 3x3 convolution kernels over an image and
// combines the results into an edge map.
//
// Pixels are held as packed 32-bit ARGB values in a Grid. Convolution clamps
// every channel to [0, 255]; Add does not, so channel sums above 255 spill
// into the neighbouring channel exactly as plain shift-and-OR packing does.
// Everything runs in memory on a single goroutine.
package convolve
