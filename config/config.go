package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Chat    ChatConfig    `yaml:"chat"`
	Mongo   MongoConfig   `yaml:"mongo"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ServerConfig 는 HTTP 서버 바인딩과 정적 UI 번들 위치를 정의한다.
type ServerConfig struct {
	Port      string `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
	// AllowedOrigins 가 비어 있으면 모든 origin 을 허용한다.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// GeminiConfig 는 생성 모델 호출 설정이다.
// API 키는 yaml 에 두지 않고 GEMINI_API_KEY 환경변수로만 받는다.
type GeminiConfig struct {
	APIKey         string `yaml:"-"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ChatConfig 는 /api/chat 의 실패 응답 형식을 결정한다.
type ChatConfig struct {
	// InlineErrors 가 true 이면 실패 시에도 200 과 함께 "Error: ..." reply 를 돌려준다.
	// 기존 브라우저 클라이언트가 이 형식에 의존한다.
	InlineErrors *bool `yaml:"inline_errors"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

const (
	DefaultPort           = "3000"
	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultTimeoutSeconds = 30
	DefaultMongoDBName    = "casestudio"
)

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c, err := Load(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}
	config = c
}

// Load 는 yaml 설정 파일을 읽고 환경변수 override 와 기본값을 적용한다.
// 파일이 없으면 기본값만으로 구성한다.
func Load(path string) (*AppConfig, error) {
	var c AppConfig
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	applyEnv(&c)
	applyDefaults(&c)
	return &c, nil
}

func applyEnv(c *AppConfig) {
	c.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Gemini.Model = v
	}
	if v := os.Getenv("GEMINI_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Gemini.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DB_NAME"); v != "" {
		c.Mongo.DBName = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.AllowedOrigins = origins
	}
}

func applyDefaults(c *AppConfig) {
	if c.Server.Port == "" {
		c.Server.Port = DefaultPort
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = DefaultGeminiModel
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		c.Gemini.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Mongo.DBName == "" {
		c.Mongo.DBName = DefaultMongoDBName
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// ChatInlineErrors 는 chat.inline_errors 값을 돌려준다. 설정이 없으면 true.
func (c AppConfig) ChatInlineErrors() bool {
	if c.Chat.InlineErrors == nil {
		return true
	}
	return *c.Chat.InlineErrors
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
