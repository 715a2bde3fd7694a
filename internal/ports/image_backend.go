package ports

import "image"

// ImageBackend composites a raster image with the already-indented info
// lines, replacing the textual logo entirely.
type ImageBackend interface {
	Render(img image.Image, infoLines []string) string
}
