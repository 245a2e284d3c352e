package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string   `mapstructure:"PORT"`
	DatabasePath                  string   `mapstructure:"DATABASE_PATH"`
	APIBaseURL                    string   `mapstructure:"API_BASE_URL"`
	EnabledEvents                 []string `mapstructure:"ENABLED_EVENTS"`
	EventWindowStart              string   `mapstructure:"EVENT_WINDOW_START"`
	EventWindowEnd                string   `mapstructure:"EVENT_WINDOW_END"`
	AuthTokenSecret               string   `mapstructure:"AUTH_TOKEN_SECRET"`
	DiscordBotToken               string   `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string   `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	EnableCORS                    bool     `mapstructure:"ENABLE_CORS"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "utsav.db")
	viper.SetDefault("API_BASE_URL", "http://127.0.0.1:8080")
	viper.SetDefault("ENABLED_EVENTS", []string{"annual-utsav-jan"})
	viper.SetDefault("EVENT_WINDOW_START", "2026-01-19")
	viper.SetDefault("EVENT_WINDOW_END", "2026-01-22")

	viper.BindEnv("PORT")
	viper.BindEnv("DATABASE_PATH")
	viper.BindEnv("API_BASE_URL")
	viper.BindEnv("ENABLED_EVENTS")
	viper.BindEnv("EVENT_WINDOW_START")
	viper.BindEnv("EVENT_WINDOW_END")
	viper.BindEnv("AUTH_TOKEN_SECRET")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("ENABLE_CORS")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}

// EventWindow parses the configured attendance window. The original event
// hardcoded Jan 19-22; here both bounds come from configuration and a
// missing or malformed side leaves that side unbounded.
func (c *Config) EventWindow() (start, end time.Time) {
	const layout = "2006-01-02"
	if c.EventWindowStart != "" {
		t, err := time.Parse(layout, c.EventWindowStart)
		if err != nil {
			log.Printf("Invalid EVENT_WINDOW_START %q: %v", c.EventWindowStart, err)
		} else {
			start = t
		}
	}
	if c.EventWindowEnd != "" {
		t, err := time.Parse(layout, c.EventWindowEnd)
		if err != nil {
			log.Printf("Invalid EVENT_WINDOW_END %q: %v", c.EventWindowEnd, err)
		} else {
			end = t
		}
	}
	return start, end
}
