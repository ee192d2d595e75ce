package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Model     ModelConfig     `mapstructure:"model"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Doubao    DoubaoConfig    `mapstructure:"doubao"`
	Qwen      QwenConfig      `mapstructure:"qwen"`
	Replicate ReplicateConfig `mapstructure:"replicate"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	MaxHeaderBytes int           `mapstructure:"max_header_bytes"`
}

type ModelConfig struct {
	Provider string `mapstructure:"provider"` // openai / doubao / qwen
}

type OpenAIConfig struct {
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url"`
	Model      string        `mapstructure:"model"`
	ImageModel string        `mapstructure:"image_model"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type DoubaoConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type QwenConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float32       `mapstructure:"temperature"`
	TopP        float32       `mapstructure:"top_p"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type ReplicateConfig struct {
	APIToken string        `mapstructure:"api_token"`
	BaseURL  string        `mapstructure:"base_url"`
	Version  string        `mapstructure:"version"` // 视频模型版本ID
	Timeout  time.Duration `mapstructure:"timeout"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var cfg *Config

func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("INFLUENCEOS")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// 配置文件优先，未设置时回退到厂商约定的环境变量
	if cfg.OpenAI.APIKey == "" {
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Doubao.APIKey == "" {
		cfg.Doubao.APIKey = os.Getenv("ARK_API_KEY")
	}
	if cfg.Qwen.APIKey == "" {
		cfg.Qwen.APIKey = os.Getenv("DASHSCOPE_API_KEY")
	}
	if cfg.Replicate.APIToken == "" {
		cfg.Replicate.APIToken = os.Getenv("REPLICATE_API_TOKEN")
	}

	// 凭证缺失在启动阶段直接失败，避免请求阶段才暴露晦涩的上游错误
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(c *Config) {
	if c.Model.Provider == "" {
		c.Model.Provider = "openai"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4.1"
	}
	if c.OpenAI.ImageModel == "" {
		c.OpenAI.ImageModel = "gpt-image-1"
	}
	if c.Replicate.BaseURL == "" {
		c.Replicate.BaseURL = "https://api.replicate.com"
	}
	if c.OpenAI.Timeout == 0 {
		c.OpenAI.Timeout = 120 * time.Second
	}
	if c.Replicate.Timeout == 0 {
		c.Replicate.Timeout = 60 * time.Second
	}
}

func (c *Config) validate() error {
	switch c.Model.Provider {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("openai api key is not configured (set openai.api_key or OPENAI_API_KEY)")
		}
	case "doubao":
		if c.Doubao.APIKey == "" {
			return fmt.Errorf("doubao api key is not configured (set doubao.api_key or ARK_API_KEY)")
		}
	case "qwen":
		if c.Qwen.APIKey == "" {
			return fmt.Errorf("qwen api key is not configured (set qwen.api_key or DASHSCOPE_API_KEY)")
		}
	default:
		return fmt.Errorf("unsupported model provider: %s", c.Model.Provider)
	}

	// 图片生成始终走OpenAI，即使聊天模型切换到其他厂商
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai api key is required for image generation (set openai.api_key or OPENAI_API_KEY)")
	}
	if c.Replicate.APIToken == "" {
		return fmt.Errorf("replicate api token is not configured (set replicate.api_token or REPLICATE_API_TOKEN)")
	}
	return nil
}

func Get() *Config {
	return cfg
}
