package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/knightnemo/vid2world/internal/display"
	"github.com/knightnemo/vid2world/internal/probe"
)

// Plan is one fully resolved composite build: the slot sources, the output
// geometry, and the compose function that turns one frame per slot into one
// output frame. Building a plan probes every clip but decodes nothing; the
// runner does the decoding.
type Plan struct {
	Name   string
	Output string

	// Composite dimensions before even-dimension padding.
	Width  int
	Height int

	FPS    float64
	Frames int

	Background color.Color
	Sources    []Source
	Compose    func(tiles []*image.RGBA) *image.RGBA

	// Rows describes the slot assignment for the sources table.
	Rows []display.SourceRow
}

// Composite background colors: the showcase grid and aggregate composites sit
// on black, the comparison and action layouts on white.
var (
	bgBlack = color.RGBA{A: 255}
	bgWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// joinOutput resolves a scenario output path against its root directory.
func joinOutput(root, out string) string {
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(root, out)
}

// clipInfo is the probed metadata a builder needs per clip: native decode
// size, frame count, and frame rate.
type clipInfo struct {
	path   string
	width  int
	height int
	frames int
	fps    float64
	res    string
}

func probeClip(path string) (clipInfo, error) {
	pr, err := probe.Probe(path)
	if err != nil {
		return clipInfo{}, err
	}
	if pr.Video == nil || pr.Video.Width <= 0 || pr.Video.Height <= 0 {
		return clipInfo{}, fmt.Errorf("%s: no usable video stream", path)
	}
	return clipInfo{
		path:   path,
		width:  pr.Video.Width,
		height: pr.Video.Height,
		frames: pr.FrameCount(),
		fps:    pr.FPS(),
		res:    pr.Resolution(),
	}, nil
}

// planLength returns the output frame count: the longest clip wins, so no
// source is truncated. Fails when no clip reports a usable frame count.
func planLength(infos []clipInfo) (int, error) {
	max := 0
	for _, ci := range infos {
		if ci.frames > max {
			max = ci.frames
		}
	}
	if max <= 0 {
		return 0, fmt.Errorf("%w: could not determine any clip length", ErrNoSources)
	}
	return max, nil
}

// planFPS returns the first known clip frame rate, defaulting to 30.
func planFPS(infos []clipInfo) float64 {
	for _, ci := range infos {
		if ci.fps > 0 {
			return ci.fps
		}
	}
	return 30
}
