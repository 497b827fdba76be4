package naming

import (
	"reflect"
	"testing"
)

func TestMethodFor_Labels(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"level1_gt.mp4", "Ground Truth"},
		{"runs/level1_ours.mp4", "Vid2World (Ours)"},
		{"level1_fast.mp4", "DIAMOND-Fast"},
		{"level1_hq.mp4", "DIAMOND-HQ"},
		{"LEVEL1_GT.MP4", "Ground Truth"},
		{"something_else.mp4", "Unknown"},
	}
	for _, tt := range tests {
		if got := MethodLabel(tt.path); got != tt.want {
			t.Errorf("MethodLabel(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

// Sorting suffix-tagged files must yield gt, ours, fast, hq regardless of
// input order.
func TestSortByMethod_Order(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"reverse order",
			[]string{"x_hq.mp4", "x_fast.mp4", "x_ours.mp4", "x_gt.mp4"},
			[]string{"x_gt.mp4", "x_ours.mp4", "x_fast.mp4", "x_hq.mp4"},
		},
		{
			"directory iteration order",
			[]string{"x_fast.mp4", "x_gt.mp4", "x_hq.mp4", "x_ours.mp4"},
			[]string{"x_gt.mp4", "x_ours.mp4", "x_fast.mp4", "x_hq.mp4"},
		},
		{
			"unknown sorts last",
			[]string{"mystery.mp4", "x_ours.mp4", "x_gt.mp4"},
			[]string{"x_gt.mp4", "x_ours.mp4", "mystery.mp4"},
		},
		{
			"ties break lexicographically",
			[]string{"b_gt.mp4", "a_gt.mp4"},
			[]string{"a_gt.mp4", "b_gt.mp4"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := append([]string(nil), tt.in...)
			SortByMethod(paths)
			if !reflect.DeepEqual(paths, tt.want) {
				t.Errorf("SortByMethod(%v) = %v, want %v", tt.in, paths, tt.want)
			}
		})
	}
}

func TestActions_RosterOrder(t *testing.T) {
	got := Actions()
	if len(got) != 8 {
		t.Fatalf("Actions() has %d entries, want 8", len(got))
	}
	wantKeys := []string{"w", "a", "s", "d", "up", "down", "l", "r"}
	for i, a := range got {
		if a.Key != wantKeys[i] {
			t.Errorf("Actions()[%d].Key = %q, want %q", i, a.Key, wantKeys[i])
		}
	}
	if got[4].Label != "Look Up" {
		t.Errorf("Actions()[4].Label = %q, want Look Up", got[4].Label)
	}
}

func TestActionFile(t *testing.T) {
	if got := ActionFile("up"); got != "pred_video_up.mp4" {
		t.Errorf("ActionFile(up) = %q", got)
	}
}
