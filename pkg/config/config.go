package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Session SessionConfig
	Sim     SimConfig
	Log     LogConfig
}

type ServerConfig struct {
	Address string
	Mode    string // gin 模式：debug、release、test
}

// StorageConfig 選擇 mock 資料的來源。
// "memory" 不經過 gorm，"sqlite" 與 "postgres" 透過 gorm 存取。
type StorageConfig struct {
	Driver string
	DSN    string
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

// SimConfig 是模擬網路動作的固定延遲
type SimConfig struct {
	MatchmakingDelay  time.Duration `mapstructure:"matchmaking_delay"`
	RoomCreationDelay time.Duration `mapstructure:"room_creation_delay"`
	SignInDelay       time.Duration `mapstructure:"sign_in_delay"`
	ConfettiDuration  time.Duration `mapstructure:"confetti_duration"`
}

type LogConfig struct {
	Level string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.dsn", "file::memory:?cache=shared")
	v.SetDefault("session.secret", "change-me")
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("sim.matchmaking_delay", "2s")
	v.SetDefault("sim.room_creation_delay", "1500ms")
	v.SetDefault("sim.sign_in_delay", "1500ms")
	v.SetDefault("sim.confetti_duration", "3s")
	v.SetDefault("log.level", "info")
}

// New 建立已設定預設值、環境變數與設定檔路徑的 viper，
// 可在 Load 之前綁定命令列旗標
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./pkg/config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("D23")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load 讀取 .env 與 config.yaml 後解碼成 Config，找不到設定檔時使用預設值
func Load(v *viper.Viper) (*Config, error) {
	_ = godotenv.Load()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
