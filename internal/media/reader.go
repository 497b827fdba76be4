// Package media wraps ffmpeg for sequential frame access: a Reader that
// decodes a source into raw RGBA frames over a stdout pipe, and a Writer
// that encodes RGBA frames from a stdin pipe into an H.264 file. There is no
// random access; frames flow strictly in order.
package media

import (
	"bytes"
	"fmt"
	"image"
	"io"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Reader decodes one video file into a stream of RGBA frames.
type Reader struct {
	path   string
	width  int
	height int

	cmd    cmdHandle
	out    io.ReadCloser
	stderr bytes.Buffer
}

// NewReader starts an ffmpeg decode of path at its native width x height
// (as previously probed) and returns a Reader positioned before frame 0.
func NewReader(path string, width, height int) (*Reader, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("open %q: invalid frame size %dx%d", path, width, height)
	}
	r := &Reader{path: path, width: width, height: height}

	cmd := ffmpeg.Input(path).
		Output("pipe:", ffmpeg.KwArgs{
			"format":   "rawvideo",
			"pix_fmt":  "rgba",
			"loglevel": "error",
		}).
		Silent(true).
		Compile()
	cmd.Stderr = &r.stderr

	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start decoder for %q: %w", path, err)
	}
	r.cmd = cmdHandle{cmd}
	r.out = out
	return r, nil
}

// Next returns the next decoded frame, or io.EOF once the source is
// exhausted. Any other error means the decoder failed mid-stream.
func (r *Reader) Next() (*image.RGBA, error) {
	n := r.width * r.height * 4
	pix := make([]byte, n)
	if _, err := io.ReadFull(r.out, pix); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("decode %q: %w (%s)", r.path, err, stderrTail(&r.stderr))
	}
	return &image.RGBA{
		Pix:    pix,
		Stride: 4 * r.width,
		Rect:   image.Rect(0, 0, r.width, r.height),
	}, nil
}

// Size returns the native frame dimensions the reader decodes at.
func (r *Reader) Size() (int, int) { return r.width, r.height }

// Close terminates the decoder and reaps the process. Safe to call before
// EOF: the exit status of a decoder killed by its closed pipe is ignored.
func (r *Reader) Close() error {
	if r.cmd.Cmd == nil {
		return nil
	}
	_ = r.out.Close()
	_ = r.cmd.Wait()
	r.cmd.Cmd = nil
	return nil
}
