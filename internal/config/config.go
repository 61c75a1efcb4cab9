package config

type Config struct {
	Preview PreviewConfig `yaml:"preview"`
	UI      UIConfig      `yaml:"ui"`
	Stream  StreamConfig  `yaml:"stream"`
}

type PreviewConfig struct {
	// Bind is the preview server address; port 0 picks a free port.
	Bind        string `yaml:"bind"`
	CrossfadeMS int    `yaml:"crossfade_ms"`
	// AdvanceMS is the dwell between auto-advance steps, so every ready
	// entry is visible before the cursor moves on.
	AdvanceMS int `yaml:"advance_ms"`
}

type UIConfig struct {
	Theme        string `yaml:"theme"`
	TypewriterMS int    `yaml:"typewriter_ms"`
}

type StreamConfig struct {
	BufferSize int `yaml:"buffer_size"`
}
