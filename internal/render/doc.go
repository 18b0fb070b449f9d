// Package render draws a background.Scene without a window: to an image with
// the gg software rasterizer, or to an SVG document.
package render
