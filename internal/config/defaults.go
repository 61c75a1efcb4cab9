package config

func DefaultConfig() Config {
	return Config{
		Preview: PreviewConfig{
			Bind:        "127.0.0.1:0",
			CrossfadeMS: 150,
			AdvanceMS:   1200,
		},
		UI: UIConfig{
			Theme:        "default",
			TypewriterMS: 35,
		},
		Stream: StreamConfig{
			BufferSize: 256,
		},
	}
}
