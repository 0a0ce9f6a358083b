package config

import "fmt"

type Config struct {
	LLM     LLMConfig     `yaml:"llm"`
	Segment SegmentConfig `yaml:"segment"`
	Prompts PromptsConfig `yaml:"prompts"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
}

type LLMConfig struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	// Temperature and MaxRetries are pointers so an explicit 0 in the
	// file is distinguishable from an absent key.
	Temperature      *float64 `yaml:"temperature"`
	MaxRetries       *int     `yaml:"max_retries"`
	BaseDelaySeconds float64  `yaml:"base_delay_seconds"`
}

type SegmentConfig struct {
	WordsPerSegment int `yaml:"words_per_segment"`
}

type PromptsConfig struct {
	// Dir optionally overrides the embedded prompt templates.
	Dir string `yaml:"dir"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "":
		c.LLM.Provider = "openai"
	case "openai", "gemini":
	default:
		return fmt.Errorf("llm.provider %q is not supported (want openai or gemini)", c.LLM.Provider)
	}

	if c.LLM.MaxTokens < 0 {
		return fmt.Errorf("llm.max_tokens must not be negative")
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 1500
	}
	if c.LLM.Temperature == nil {
		temp := 0.7
		c.LLM.Temperature = &temp
	} else if *c.LLM.Temperature < 0 || *c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if c.LLM.MaxRetries == nil {
		retries := 3
		c.LLM.MaxRetries = &retries
	} else if *c.LLM.MaxRetries < 0 {
		return fmt.Errorf("llm.max_retries must not be negative")
	}
	if c.LLM.BaseDelaySeconds < 0 {
		return fmt.Errorf("llm.base_delay_seconds must not be negative")
	}
	if c.LLM.BaseDelaySeconds == 0 {
		c.LLM.BaseDelaySeconds = 1.0
	}

	if c.Segment.WordsPerSegment < 0 {
		return fmt.Errorf("segment.words_per_segment must be at least 1")
	}
	if c.Segment.WordsPerSegment == 0 {
		c.Segment.WordsPerSegment = 500
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
