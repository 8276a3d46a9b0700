package core

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const DefaultScreenWidth = 800
const DefaultScreenHeight = 600

// Settings holds the host-side values read from properties/<env>.properties.
type Settings struct {
	ScreenWidth  float32
	ScreenHeight float32
	FrameTime    time.Duration
	KeyHold      time.Duration
}

func ReadSettings(dir, env string) (Settings, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("properties")
	v.AddConfigPath(filepath.Join(dir, "properties"))

	v.SetDefault("SCREEN_WIDTH", DefaultScreenWidth)
	v.SetDefault("SCREEN_HEIGHT", DefaultScreenHeight)
	v.SetDefault("FRAME_MILLIS", 16)
	v.SetDefault("KEY_HOLD_MILLIS", 550)

	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("read properties %q: %w", env, err)
	}

	return Settings{
		ScreenWidth:  cast.ToFloat32(v.Get("SCREEN_WIDTH")),
		ScreenHeight: cast.ToFloat32(v.Get("SCREEN_HEIGHT")),
		FrameTime:    time.Duration(cast.ToInt(v.Get("FRAME_MILLIS"))) * time.Millisecond,
		KeyHold:      time.Duration(cast.ToInt(v.Get("KEY_HOLD_MILLIS"))) * time.Millisecond,
	}, nil
}
