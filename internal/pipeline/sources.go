package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/knightnemo/vid2world/internal/config"
	"github.com/knightnemo/vid2world/internal/frame"
	"github.com/knightnemo/vid2world/internal/media"
)

// Source yields one transformed frame per output frame for a single slot of a
// composite. A Source never returns io.EOF: the exhaustion policy keeps it
// producing frames until the run ends.
type Source interface {
	Next() (*image.RGBA, error)
	Close() error
}

// frameStream is the decoder seam under a clipSource. Production code uses
// media.Reader; tests substitute fixed frame sequences.
type frameStream interface {
	Next() (*image.RGBA, error)
	Close() error
}

// clipSource decodes one clip, applies its slot transform, and extends the
// stream past EOF according to the exhaustion policy: hold repeats the last
// transformed frame, loop reopens the decoder from frame 0.
type clipSource struct {
	path      string
	policy    config.ExhaustPolicy
	transform func(*image.RGBA) *image.RGBA
	open      func() (frameStream, error)

	cur  frameStream
	last *image.RGBA
}

// newClipSource builds a slot source for path decoding at its native w x h.
// transform may be nil for passthrough.
func newClipSource(path string, w, h int, policy config.ExhaustPolicy, transform func(*image.RGBA) *image.RGBA) *clipSource {
	return &clipSource{
		path:      path,
		policy:    policy,
		transform: transform,
		open: func() (frameStream, error) {
			return media.NewReader(path, w, h)
		},
	}
}

func (s *clipSource) Next() (*image.RGBA, error) {
	if s.cur == nil {
		cur, err := s.open()
		if err != nil {
			return nil, err
		}
		s.cur = cur
	}

	img, err := s.cur.Next()
	if err == io.EOF && s.policy == config.ExhaustLoop {
		// Restart from frame 0. A clip that is empty on reopen falls
		// through to the hold path below.
		_ = s.cur.Close()
		cur, oerr := s.open()
		if oerr != nil {
			return nil, oerr
		}
		s.cur = cur
		img, err = s.cur.Next()
	}

	if err == io.EOF {
		if s.last != nil {
			return s.last, nil
		}
		return nil, fmt.Errorf("%s: %w", s.path, ErrDecodeExhausted)
	}
	if err != nil {
		return nil, err
	}

	if s.transform != nil {
		img = s.transform(img)
	}
	s.last = img
	return img, nil
}

func (s *clipSource) Close() error {
	if s.cur == nil {
		return nil
	}
	err := s.cur.Close()
	s.cur = nil
	return err
}

// blankSource fills an empty grid slot with a fixed uniform tile.
type blankSource struct {
	img *image.RGBA
}

func newBlankSource(w, h int, bg color.Color) *blankSource {
	return &blankSource{img: frame.Blank(w, h, bg)}
}

func (s *blankSource) Next() (*image.RGBA, error) { return s.img, nil }
func (s *blankSource) Close() error               { return nil }

// stillSource freezes on the first frame of an inner source: the conditioned
// frame tile of the action grid. The inner decoder is released as soon as the
// frame is captured.
type stillSource struct {
	inner Source
	img   *image.RGBA
}

func newStillSource(inner Source) *stillSource {
	return &stillSource{inner: inner}
}

func (s *stillSource) Next() (*image.RGBA, error) {
	if s.img == nil {
		img, err := s.inner.Next()
		if err != nil {
			return nil, err
		}
		s.img = img
		_ = s.inner.Close()
	}
	return s.img, nil
}

func (s *stillSource) Close() error {
	if s.img == nil {
		return s.inner.Close()
	}
	return nil
}

func closeSources(sources []Source) {
	for _, s := range sources {
		if s != nil {
			_ = s.Close()
		}
	}
}
