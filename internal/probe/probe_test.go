package probe

import "testing"

const sampleJSON = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 1280,
      "height": 720,
      "avg_frame_rate": "30000/1001",
      "nb_frames": "450",
      "disposition": {"default": 1, "attached_pic": 0}
    },
    {
      "index": 1,
      "codec_name": "aac",
      "codec_type": "audio"
    }
  ],
  "format": {
    "filename": "pred_video.mp4",
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "duration": "15.015000",
    "size": "1048576"
  }
}`

func TestParseJSON_Basic(t *testing.T) {
	r, err := ParseJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if r.Video == nil {
		t.Fatal("no video stream parsed")
	}
	if r.Video.Width != 1280 || r.Video.Height != 720 {
		t.Errorf("dimensions = %dx%d, want 1280x720", r.Video.Width, r.Video.Height)
	}
	if r.Video.Codec != "h264" {
		t.Errorf("codec = %q, want h264", r.Video.Codec)
	}
	if got := r.FrameCount(); got != 450 {
		t.Errorf("FrameCount() = %d, want 450", got)
	}
	if got := r.FPS(); got < 29.96 || got > 29.98 {
		t.Errorf("FPS() = %v, want ~29.97", got)
	}
	if got := r.Resolution(); got != "1280x720" {
		t.Errorf("Resolution() = %q, want 1280x720", got)
	}
}

func TestParseJSON_AttachedPicSkipped(t *testing.T) {
	const coverArt = `{
	  "streams": [
	    {"index": 0, "codec_type": "video", "codec_name": "mjpeg",
	     "width": 600, "height": 600, "disposition": {"attached_pic": 1}},
	    {"index": 1, "codec_type": "video", "codec_name": "h264",
	     "width": 1920, "height": 1080, "avg_frame_rate": "25/1", "nb_frames": "100"}
	  ],
	  "format": {"filename": "x.mkv", "duration": "4.0"}
	}`
	r, err := ParseJSON([]byte(coverArt))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if r.Video == nil || r.Video.Codec != "h264" {
		t.Fatalf("primary video = %+v, want the h264 stream", r.Video)
	}
}

func TestFrameCount_FallbackToDuration(t *testing.T) {
	const noNbFrames = `{
	  "streams": [
	    {"index": 0, "codec_type": "video", "codec_name": "h264",
	     "width": 640, "height": 360, "avg_frame_rate": "30/1"}
	  ],
	  "format": {"filename": "x.mp4", "duration": "1.666667"}
	}`
	r, err := ParseJSON([]byte(noNbFrames))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got := r.FrameCount(); got != 50 {
		t.Errorf("FrameCount() = %d, want 50 (duration*fps)", got)
	}
}

func TestParseJSON_NoVideo(t *testing.T) {
	const audioOnly = `{
	  "streams": [{"index": 0, "codec_type": "audio", "codec_name": "mp3"}],
	  "format": {"filename": "x.mp3", "duration": "60.0"}
	}`
	r, err := ParseJSON([]byte(audioOnly))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if r.Video != nil {
		t.Errorf("Video = %+v, want nil", r.Video)
	}
	if got := r.Resolution(); got != "unknown" {
		t.Errorf("Resolution() = %q, want unknown", got)
	}
	if got := r.FrameCount(); got != 0 {
		t.Errorf("FrameCount() = %d, want 0", got)
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	if _, err := ParseJSON([]byte("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestParseRational(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"30/1", 30},
		{"30000/1001", 29.97002997002997},
		{"0/0", 0},
		{"", 0},
		{"25", 25},
		{"garbage", 0},
	}
	for _, tt := range tests {
		if got := parseRational(tt.in); got != tt.want {
			t.Errorf("parseRational(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
