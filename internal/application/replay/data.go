package replay

// FormatVersion is written into every recording.
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	P bool `json:"p,omitempty"` // PointerDown
	T bool `json:"t,omitempty"` // TogglePause
	W int  `json:"w,omitempty"` // Width after a resize
	H int  `json:"h,omitempty"` // Height after a resize
}

// ReplayData contains all data needed to replay a game session.
// A session replays identically given the same seed, viewport size and
// autoplay flag.
type ReplayData struct {
	Version    string       `json:"version"`
	Seed       int64        `json:"seed"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Autoplay   bool         `json:"autoplay,omitempty"`
	StartTime  string       `json:"startTime"`
	FinalScore int          `json:"finalScore"`
	Frames     []FrameInput `json:"frames"`
}
