package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/khanghh/authportal/params"
	"github.com/spf13/viper"
)

const (
	DefaultListenAddr     = ":3000"
	DefaultSiteName       = "authportal"
	DefaultAuthAPIBaseURL = "http://localhost:8080"
	DefaultCookieName     = "authportal_session"
	DefaultCookieMaxAge   = 7 * 24 * time.Hour
	DefaultLogMaxSize     = 100
	DefaultLogMaxBackups  = 5
	DefaultLogMaxAge      = 30
	EnvPrefix             = "AUTHPORTAL"
)

type SessionConfig struct {
	SessionMaxAge  time.Duration `yaml:"sessionMaxAge"`
	CookieName     string        `yaml:"cookieName"`
	CookieHttpOnly bool          `yaml:"cookieHttpOnly"`
	CookieSecure   bool          `yaml:"cookieSecure"`
}

type AuthAPIConfig struct {
	BaseURL string        `yaml:"baseURL"`
	Timeout time.Duration `yaml:"timeout"`
}

type LogConfig struct {
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"maxSize"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAge     int    `yaml:"maxAge"`
}

type Config struct {
	Debug       bool          `yaml:"debug"`
	SiteName    string        `yaml:"siteName"`
	ListenAddr  string        `yaml:"listenAddr"`
	TemplateDir string        `yaml:"templateDir"`
	RedisURL    string        `yaml:"redisURL"`
	LockTTL     time.Duration `yaml:"lockTTL"`
	AuthAPI     AuthAPIConfig `yaml:"authAPI"`
	Session     SessionConfig `yaml:"session"`
	Log         LogConfig     `yaml:"log"`
}

func (c *Config) Sanitize() error {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.SiteName == "" {
		c.SiteName = DefaultSiteName
	}
	if c.LockTTL <= 0 {
		c.LockTTL = params.SubmitLockExpiration
	}
	if c.AuthAPI.BaseURL == "" {
		c.AuthAPI.BaseURL = DefaultAuthAPIBaseURL
	}
	if _, err := url.ParseRequestURI(c.AuthAPI.BaseURL); err != nil {
		return fmt.Errorf("invalid authAPI.baseURL: %w", err)
	}
	c.AuthAPI.BaseURL = strings.TrimRight(c.AuthAPI.BaseURL, "/")
	if c.AuthAPI.Timeout <= 0 {
		c.AuthAPI.Timeout = params.AuthAPIRequestTimeout
	}
	if c.Session.SessionMaxAge <= 0 {
		c.Session.SessionMaxAge = DefaultCookieMaxAge
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = DefaultCookieName
	}
	if c.Log.MaxSize <= 0 {
		c.Log.MaxSize = DefaultLogMaxSize
	}
	if c.Log.MaxBackups <= 0 {
		c.Log.MaxBackups = DefaultLogMaxBackups
	}
	if c.Log.MaxAge <= 0 {
		c.Log.MaxAge = DefaultLogMaxAge
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{
		"debug", "siteName", "listenAddr", "templateDir", "redisURL", "lockTTL",
		"authAPI.baseURL", "authAPI.timeout",
		"session.sessionMaxAge", "session.cookieName", "session.cookieHttpOnly", "session.cookieSecure",
		"log.file", "log.maxSize", "log.maxBackups", "log.maxAge",
	} {
		v.BindEnv(key)
	}
	return v
}

// LoadConfig reads filename and applies AUTHPORTAL_* environment overrides.
// A missing file is not an error, every setting has a default.
func LoadConfig(filename string) (*Config, error) {
	v := newViper()
	if filename != "" {
		v.SetConfigFile(filename)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Sanitize(); err != nil {
		return nil, err
	}
	return &config, nil
}
