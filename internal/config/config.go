package config

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FLEETPORTAL_"

// CacheMode has the following constants: CacheModeMemory, CacheModeRedis
type CacheMode string

const (
	CacheModeMemory CacheMode = "memory"
	CacheModeRedis  CacheMode = "redis"
)

type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

type RedisConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  int
	KeyPrefix string
}

type CacheConfig struct {
	Mode       CacheMode
	Ttl        time.Duration
	MaxEntries int
	// KeySecret keys the HMAC that turns passwords into cache keys. Memory
	// mode falls back to a random per-process secret when it is empty.
	KeySecret string
	Redis     RedisConfig
}

type PasswordConfig struct {
	MaxDisplayedErrors int
}

type LogConfig struct {
	Level string
}

type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Password PasswordConfig
	Log      LogConfig
}

const (
	EnvironmentProduction  = "PRODUCTION"
	EnvironmentDevelopment = "DEVELOPMENT"
)

var configFilePath string
var environment string
var C Config

func IsProduction() bool {
	return environment == EnvironmentProduction
}

// Init reads the command line flags, then layers the optional config file
// and FLEETPORTAL_ environment variables into C.
func Init() {
	readFlags()

	loaded, err := load(configFilePath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	C = loaded
	setDefaultsOrPanic()
}

func load(path string) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: transformEnv,
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	var loaded Config
	err = k.Unmarshal("", &loaded)
	if err != nil {
		return Config{}, fmt.Errorf("unmarshalling: %w", err)
	}

	return loaded, nil
}

func transformEnv(k, v string) (string, any) {
	k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, envPrefix)), "_", ".")

	if strings.Contains(v, " ") {
		return k, strings.Split(v, " ")
	}

	return k, v
}

func setDefaultsOrPanic() {
	setServerDefaultsOrPanic()
	setCacheDefaultsOrPanic()
	setPasswordDefaults()
}

func setServerDefaultsOrPanic() {
	if C.Server.Host == "" {
		if IsProduction() {
			panic("missing server hostname in config")
		}

		C.Server.Host = "localhost"
	}

	if C.Server.Port == 0 {
		C.Server.Port = 8080
	}

	if len(C.Server.AllowedOrigins) == 0 {
		if IsProduction() {
			panic("missing allowed origins")
		}

		C.Server.AllowedOrigins = []string{"*", "http://localhost:3000"}
	}
}

func setCacheDefaultsOrPanic() {
	if C.Cache.Mode == "" {
		C.Cache.Mode = CacheModeMemory
	}

	if C.Cache.Ttl == 0 {
		C.Cache.Ttl = 5 * time.Minute
	}

	switch C.Cache.Mode {
	case CacheModeMemory:
		if C.Cache.MaxEntries <= 0 {
			C.Cache.MaxEntries = 10000
		}

	case CacheModeRedis:
		setRedisDefaultsOrPanic()

	default:
		panic("cache mode not supported")
	}
}

func setRedisDefaultsOrPanic() {
	if C.Cache.Redis.Host == "" {
		if IsProduction() {
			panic("missing redis host")
		}

		C.Cache.Redis.Host = "localhost"
	}

	if C.Cache.Redis.Port == 0 {
		C.Cache.Redis.Port = 6379
	}

	if C.Cache.Redis.KeyPrefix == "" {
		C.Cache.Redis.KeyPrefix = "fleetportal:"
	}

	if C.Cache.KeySecret == "" {
		if IsProduction() {
			panic("missing cache key secret")
		}

		C.Cache.KeySecret = "insecure-development-secret"
	}
}

func setPasswordDefaults() {
	if C.Password.MaxDisplayedErrors <= 0 {
		C.Password.MaxDisplayedErrors = 3
	}
}

func readFlags() {
	flag.StringVar(&configFilePath, "config", "", "Path of the yaml config file.")
	flag.StringVar(&environment, "environment", EnvironmentProduction, "PRODUCTION or DEVELOPMENT.")
	flag.Parse()
}
