package engine

import (
	"fmt"
	"image/png"
	"os"
)

// SavePPM writes a framebuffer to a plain-text PPM file.
func SavePPM(path string, fb *Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ppm: %w", err)
	}
	defer f.Close()

	if err := fb.WritePPM(f); err != nil {
		return fmt.Errorf("write ppm: %w", err)
	}
	return nil
}

// SavePNG writes a framebuffer to a PNG file.
func SavePNG(path string, fb *Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, fb.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
