package dnglab

import (
	"fmt"
	"strings"
)

// Compression is a dnglab compression mode.
type Compression string

const (
	CompressionLossless     Compression = "lossless"
	CompressionUncompressed Compression = "uncompressed"
)

// Crop is a dnglab default-crop mode.
type Crop string

const (
	CropBest       Crop = "best"
	CropActiveArea Crop = "activearea"
	CropNone       Crop = "none"
	CropAuto       Crop = "auto"
)

var (
	compressionModes = []Compression{CompressionLossless, CompressionUncompressed}
	cropModes        = []Crop{CropBest, CropActiveArea, CropNone, CropAuto}
)

// CompressionModes lists accepted compression values in display order.
func CompressionModes() []Compression {
	return append([]Compression(nil), compressionModes...)
}

// CropModes lists accepted crop values in display order.
func CropModes() []Crop {
	return append([]Crop(nil), cropModes...)
}

// ParseCompression normalizes value and checks it against the known modes.
func ParseCompression(value string) (Compression, error) {
	normalized := Compression(strings.ToLower(strings.TrimSpace(value)))
	for _, mode := range compressionModes {
		if mode == normalized {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unsupported compression %q (want one of %s)", value, JoinModes(compressionModes))
}

// ParseCrop normalizes value and checks it against the known modes.
func ParseCrop(value string) (Crop, error) {
	normalized := Crop(strings.ToLower(strings.TrimSpace(value)))
	for _, mode := range cropModes {
		if mode == normalized {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unsupported crop %q (want one of %s)", value, JoinModes(cropModes))
}

// Options holds the settings for one run. The presentation layer builds a
// fresh value each time a conversion is triggered and the same value is
// applied to every file in that run.
type Options struct {
	Compression Compression `json:"compression"`
	Crop        Crop        `json:"crop"`
	EmbedRaw    bool        `json:"embed_raw"`
	Overwrite   bool        `json:"overwrite"`
	Recursive   bool        `json:"recursive"`
}

// DefaultOptions mirrors dnglab's own defaults with the original raw embedded.
func DefaultOptions() Options {
	return Options{
		Compression: CompressionLossless,
		Crop:        CropBest,
		EmbedRaw:    true,
	}
}

// JoinModes renders modes as a comma-separated list for help text and errors.
func JoinModes[T ~string](modes []T) string {
	parts := make([]string, len(modes))
	for i, mode := range modes {
		parts[i] = string(mode)
	}
	return strings.Join(parts, ", ")
}
