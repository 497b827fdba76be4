package probe

import "strconv"

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Filename   string
	FormatName string
	Duration   float64
	Size       int64
}

// VideoStream holds the parsed properties of the primary video stream.
type VideoStream struct {
	Index        int
	Codec        string
	Width        int
	Height       int
	AvgFrameRate string
	NbFrames     int64
}

// Result is the fully parsed output of a single ffprobe JSON call.
// Video is the first non-attached-pic video stream (nil if none).
type Result struct {
	Format FormatInfo
	Video  *VideoStream
}

// FPS returns the primary video frame rate, parsing ffprobe's rational
// "num/den" form. Returns 0 when unavailable.
func (r *Result) FPS() float64 {
	if r.Video == nil {
		return 0
	}
	return parseRational(r.Video.AvgFrameRate)
}

// FrameCount returns the primary video frame count, falling back to
// duration x fps when the container does not carry nb_frames.
func (r *Result) FrameCount() int {
	if r.Video == nil {
		return 0
	}
	if r.Video.NbFrames > 0 {
		return int(r.Video.NbFrames)
	}
	if fps := r.FPS(); fps > 0 && r.Format.Duration > 0 {
		return int(r.Format.Duration*fps + 0.5)
	}
	return 0
}

// Resolution returns "WxH" for the primary video stream, or "unknown".
func (r *Result) Resolution() string {
	if r.Video == nil || r.Video.Width <= 0 || r.Video.Height <= 0 {
		return "unknown"
	}
	return strconv.Itoa(r.Video.Width) + "x" + strconv.Itoa(r.Video.Height)
}

func parseRational(s string) float64 {
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			num, err1 := strconv.ParseFloat(s[:i], 64)
			den, err2 := strconv.ParseFloat(s[i+1:], 64)
			if err1 != nil || err2 != nil || den == 0 {
				return 0
			}
			return num / den
		}
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
