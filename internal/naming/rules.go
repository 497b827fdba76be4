// Package naming maps input filenames to display labels and layout order.
// Two conventions exist in the presentation assets: method-suffixed clips
// (*_gt.mp4, *_ours.mp4, ...) compared side by side, and action-keyed clips
// (pred_video_<key>.mp4) shown in the action grid.
package naming

import (
	"path/filepath"
	"sort"
	"strings"
)

// Method pairs a filename suffix with its display label and layout rank.
// Rules are evaluated in order by [MethodFor]; first match wins.
type Method struct {
	Suffix string
	Label  string
	Rank   int
}

// methods lists the known method suffixes in display order: ground truth
// first, ours second, baselines after.
var methods = []Method{
	{"_gt.mp4", "Ground Truth", 0},
	{"_ours.mp4", "Vid2World (Ours)", 1},
	{"_fast.mp4", "DIAMOND-Fast", 2},
	{"_hq.mp4", "DIAMOND-HQ", 3},
}

// unknownMethod sorts after every known method.
var unknownMethod = Method{Label: "Unknown", Rank: len(methods)}

// MethodFor returns the method for a clip path, matching on the lowercased
// basename. Unknown suffixes get the "Unknown" label and sort last.
func MethodFor(path string) Method {
	base := strings.ToLower(filepath.Base(path))
	for _, m := range methods {
		if strings.Contains(base, m.Suffix) {
			return m
		}
	}
	return unknownMethod
}

// MethodLabel returns the display label for a clip path.
func MethodLabel(path string) string { return MethodFor(path).Label }

// SortByMethod orders paths by method rank (gt, ours, fast, hq, unknown),
// breaking ties lexicographically so the result is deterministic regardless
// of directory iteration order.
func SortByMethod(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		ri, rj := MethodFor(paths[i]).Rank, MethodFor(paths[j]).Rank
		if ri != rj {
			return ri < rj
		}
		return paths[i] < paths[j]
	})
}

// Action pairs a filename key with the camera/movement label shown under its
// grid tile.
type Action struct {
	Key   string
	Label string
}

// actions lists the action-conditioned clips in grid order: movement keys on
// the first row, look keys on the second.
var actions = []Action{
	{"w", "Forward"},
	{"a", "Left"},
	{"s", "Backward"},
	{"d", "Right"},
	{"up", "Look Up"},
	{"down", "Look Down"},
	{"l", "Look Left"},
	{"r", "Look Right"},
}

// Actions returns the action roster in grid order.
func Actions() []Action {
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// ActionFile returns the expected clip filename for an action key.
func ActionFile(key string) string {
	return "pred_video_" + key + ".mp4"
}
