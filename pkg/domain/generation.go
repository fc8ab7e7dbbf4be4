package domain

import "time"

const (
	StabilityProvider = "stability"
	DemoProvider      = "demo"
)

const StableImageCoreModel = "stable-image-core"

type GenerationMode string

const (
	ModeLive GenerationMode = "live"
	ModeDemo GenerationMode = "demo"
)

const (
	MinPromptLength  = 3
	MinDimension     = 128
	MaxDimension     = 1024
	DefaultDimension = 512
)

// DemoModeNote accompanies every demo-mode result, whether demo was chosen
// up front or reached after a failed live call.
const DemoModeNote = "Running in demo mode without an AI key. Set STABILITY_API_KEY to enable real image generation."

type GenerationRequest struct {
	Prompt   string
	Provider string
	Width    int
	Height   int
}

type GenerationResult struct {
	ImageData []byte
	Provider  string
	Model     string
	Mode      GenerationMode
	Note      string
}

// Generation is the persisted record of a generation request. Writing it is
// advisory only; the response never depends on it.
type Generation struct {
	ID        int64     `bun:",pk,autoincrement"`
	Prompt    string    `bun:"prompt"`
	Provider  string    `bun:"provider"`
	Model     string    `bun:"model,nullzero"`
	Width     int       `bun:"width"`
	Height    int       `bun:"height"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
