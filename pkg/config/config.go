// Package config provides configuration loading and management.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/msuleman526/tripshow/pkg/orchestrator"
	"github.com/msuleman526/tripshow/pkg/pipeline"
)

// Config represents the full configuration for tripshow.
type Config struct {
	// Input/Output
	TripID    string `yaml:"trip_id"`
	OutputDir string `yaml:"output_dir"`

	// Book
	PageWidth  float64 `yaml:"page_width"`
	PageHeight float64 `yaml:"page_height"`

	// Preview
	Preview      bool `yaml:"preview"`
	PreviewWidth int  `yaml:"preview_width"`

	// Video
	Timeline    TimelineConfig `yaml:"timeline"`
	FrameWidth  int            `yaml:"frame_width"`
	FrameHeight int            `yaml:"frame_height"`
	FPS         float64        `yaml:"fps"`
	Quality     int            `yaml:"quality"`
	Bitrate     int            `yaml:"bitrate"`
	Format      string         `yaml:"format"`
	AudioPath   string         `yaml:"audio"`
	SettlingMs  int            `yaml:"settling_ms"`

	// Sharing
	Share bool `yaml:"share"`

	// Services
	APIBaseURL   string `yaml:"api_base_url"`
	WeatherURL   string `yaml:"weather_url"`
	ElevationURL string `yaml:"elevation_url"`
	MapURL       string `yaml:"map_url"`
	MapAPIKey    string `yaml:"map_api_key"`

	// Assets
	AssetsDir string `yaml:"assets_dir"`

	// Encoding
	FFmpegPath string `yaml:"ffmpeg_path"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// TimelineConfig represents the video timing constants.
type TimelineConfig struct {
	IntroSec    float64 `yaml:"intro_sec"`
	PerImageSec float64 `yaml:"per_image_sec"`
	OutroSec    float64 `yaml:"outro_sec"`
	FadeSec     float64 `yaml:"fade_sec"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	timeline := pipeline.DefaultTimelineSpec()

	return Config{
		// Input/Output
		OutputDir: ".",

		// Book
		PageWidth:  595,
		PageHeight: 842,

		// Preview
		PreviewWidth: 595,

		// Video
		Timeline: TimelineConfig{
			IntroSec:    timeline.IntroSec,
			PerImageSec: timeline.PerImageSec,
			OutroSec:    timeline.OutroSec,
			FadeSec:     timeline.FadeSec,
		},
		FrameWidth:  1080,
		FrameHeight: 1920,
		FPS:         30.0,
		Quality:     30,
		Format:      "webm",
		SettlingMs:  500,

		// Services
		APIBaseURL:   "https://api.youguide.com",
		WeatherURL:   "https://archive-api.open-meteo.com/v1/archive",
		ElevationURL: "https://api.open-elevation.com/api/v1/lookup",
		MapURL:       "https://maps.googleapis.com/maps/api/staticmap",

		// Assets
		AssetsDir: "assets",

		// Debug
		DebugDir: "tripshow-debug",

		// Logging
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		TripID:    c.TripID,
		OutputDir: c.OutputDir,

		PageWidth:  c.PageWidth,
		PageHeight: c.PageHeight,

		PreviewEnabled: c.Preview,
		PreviewWidth:   c.PreviewWidth,

		Timeline: pipeline.TimelineSpec{
			IntroSec:    c.Timeline.IntroSec,
			PerImageSec: c.Timeline.PerImageSec,
			OutroSec:    c.Timeline.OutroSec,
			FadeSec:     c.Timeline.FadeSec,
		},
		FrameWidth:  c.FrameWidth,
		FrameHeight: c.FrameHeight,
		FPS:         c.FPS,
		Quality:     c.Quality,
		Bitrate:     c.Bitrate,
		Format:      c.Format,
		AudioPath:   c.AudioPath,
		SettlingMs:  c.SettlingMs,

		ShareEnabled: c.Share,
	}
}
