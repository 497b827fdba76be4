package media

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// cmdHandle wraps *exec.Cmd so a nil check marks a reaped process.
type cmdHandle struct {
	*exec.Cmd
}

// Writer encodes same-size RGBA frames into one H.264 video file. Frames are
// accepted in strict sequential order; Close finalizes the container. The
// output path is guarded by a lock file so two runs cannot interleave writes
// to the same file.
type Writer struct {
	path   string
	width  int
	height int
	frames int

	lock   *flock.Flock
	cmd    cmdHandle
	in     io.WriteCloser
	stderr bytes.Buffer
}

// NewWriter opens an H.264 encoder writing to path at the given frame size
// and rate. Both dimensions must be even (4:2:0 chroma subsampling); see
// frame.PadToEven.
func NewWriter(path string, width, height int, fps float64) (*Writer, error) {
	if width <= 0 || height <= 0 || width%2 != 0 || height%2 != 0 {
		return nil, fmt.Errorf("open %q: frame size %dx%d must be positive and even", path, width, height)
	}
	if fps <= 0 {
		fps = 30
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %q: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("output %q is locked by another run", path)
	}

	w := &Writer{path: path, width: width, height: height, lock: lock}

	rate := strconv.FormatFloat(fps, 'f', -1, 64)
	cmd := ffmpeg.Input("pipe:", ffmpeg.KwArgs{
		"format":     "rawvideo",
		"pix_fmt":    "rgba",
		"video_size": fmt.Sprintf("%dx%d", width, height),
		"framerate":  rate,
	}).
		Output(path, ffmpeg.KwArgs{
			"c:v":      "libx264",
			"pix_fmt":  "yuv420p",
			"movflags": "+faststart",
			"loglevel": "error",
		}).
		OverWriteOutput().
		Silent(true).
		Compile()
	cmd.Stderr = &w.stderr

	in, err := cmd.StdinPipe()
	if err != nil {
		w.unlock()
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	if err := cmd.Start(); err != nil {
		w.unlock()
		return nil, fmt.Errorf("start encoder for %q: %w", path, err)
	}
	w.cmd = cmdHandle{cmd}
	w.in = in
	return w, nil
}

// Write appends one frame. The frame must match the writer's dimensions.
func (w *Writer) Write(img *image.RGBA) error {
	b := img.Bounds()
	if b.Dx() != w.width || b.Dy() != w.height {
		return fmt.Errorf("write %q: frame %dx%d does not match output %dx%d",
			w.path, b.Dx(), b.Dy(), w.width, w.height)
	}

	rowBytes := 4 * w.width
	if img.Stride == rowBytes && b.Min == (image.Point{}) {
		if _, err := w.in.Write(img.Pix[:rowBytes*w.height]); err != nil {
			return w.writeErr(err)
		}
	} else {
		// Padded stride or offset bounds: emit row by row.
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := img.PixOffset(b.Min.X, y)
			if _, err := w.in.Write(img.Pix[off : off+rowBytes]); err != nil {
				return w.writeErr(err)
			}
		}
	}
	w.frames++
	return nil
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int { return w.frames }

// Close flushes the encoder, waits for it to finalize the container, and
// releases the output lock. Runs on all exit paths, including errors, so the
// encoder handle never leaks.
func (w *Writer) Close() error {
	if w.cmd.Cmd == nil {
		return nil
	}
	_ = w.in.Close()
	err := w.cmd.Wait()
	w.cmd.Cmd = nil
	w.unlock()
	if err != nil {
		return fmt.Errorf("finalize %q: %w (%s)", w.path, err, stderrTail(&w.stderr))
	}
	return nil
}

func (w *Writer) writeErr(err error) error {
	return fmt.Errorf("encode %q: %w (%s)", w.path, err, stderrTail(&w.stderr))
}

func (w *Writer) unlock() {
	if w.lock == nil {
		return
	}
	_ = w.lock.Unlock()
	_ = os.Remove(w.lock.Path())
	w.lock = nil
}

// stderrTail returns the last few lines of captured ffmpeg stderr for error
// messages.
func stderrTail(buf *bytes.Buffer) string {
	s := strings.TrimSpace(buf.String())
	if s == "" {
		return "no ffmpeg output"
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return strings.Join(lines, " | ")
}
