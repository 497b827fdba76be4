// Package check provides system diagnostics (the check subcommand) and
// pre-run dependency validation for ffmpeg, ffprobe, libx264, and pdftoppm.
package check

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/knightnemo/vid2world/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
	ErrX264Failed      = errors.New("libx264 test encode failed")
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive diagnostic flow: ffmpeg/ffprobe availability
// and versions, a libx264 test encode, font candidates, and pdftoppm. This is
// informational only; it does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkTool(log, "ffmpeg")
	checkTool(log, "ffprobe")
	checkX264(log)
	checkFonts(cfg, log)
	checkPdftoppm(log)
}

// checkTool verifies a binary is on PATH and logs its version line.
func checkTool(log Logger, name string) {
	if _, err := exec.LookPath(name); err != nil {
		log.Error("%s not found", name)
		return
	}
	out, err := exec.Command(name, "-version").Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", name, err)
		return
	}
	log.Success("%s: %s", name, firstLine(string(out)))
}

// checkX264 runs a minimal libx264 encode to verify the composite encoder
// path works.
func checkX264(log Logger) {
	log.Info("Testing libx264...")
	if runSilent("ffmpeg", x264TestArgs()...) {
		log.Success("libx264 works")
	} else {
		log.Error("libx264 test encode failed")
	}
}

// checkFonts reports which label font candidates exist. Label rendering falls
// back to an embedded face, so a miss is only informational.
func checkFonts(cfg *config.Config, log Logger) {
	for _, p := range cfg.FontPaths {
		if _, err := os.Stat(p); err == nil {
			log.Success("Label font: %s", p)
			return
		}
	}
	log.Warn("No system font candidate found; labels use the embedded face")
}

// checkPdftoppm reports availability of the PDF rasterizer. Only the
// rasterize subcommand needs it.
func checkPdftoppm(log Logger) {
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		log.Warn("pdftoppm not found (rasterize subcommand unavailable)")
		return
	}
	out, _ := exec.Command("pdftoppm", "-v").CombinedOutput()
	log.Success("pdftoppm: %s", firstLine(string(out)))
}

// CheckDeps is the pre-run validation: ffmpeg and ffprobe must be on PATH and
// a quick libx264 encode must succeed. Returns a sentinel error on failure.
func CheckDeps() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	if !runSilent("ffmpeg", x264TestArgs()...) {
		return ErrX264Failed
	}
	return nil
}

// --- internal helpers ---

// x264TestArgs returns the ffmpeg arguments for a minimal libx264 test
// encode. Shared by checkX264 and CheckDeps.
func x264TestArgs() []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", "libx264", "-pix_fmt", "yuv420p",
		"-f", "null", "-",
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		s = s[:idx]
	}
	return s
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
