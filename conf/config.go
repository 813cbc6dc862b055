package conf

import (
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/gragonvlad/xmysql-connector/logger"
)

/*
Client configuration, my.cnf style:

	[client]
	prefetch_size = 1024
	default_charset = utf8mb4

	[log]
	log_error = /var/log/xmysql/error.log
	log_infos = /var/log/xmysql/client.log
	log_level = info
*/
type Cfg struct {
	Raw *ini.File

	// client
	PrefetchSize   uint64 `default:"1024"`
	DefaultCharset string `default:"utf8mb4"`

	// logs
	LogError string
	LogInfos string
	LogLevel string `default:"info"`
}

// NewDefaultCfg returns a configuration with built-in defaults, used when no
// config file is given.
func NewDefaultCfg() *Cfg {
	return &Cfg{
		PrefetchSize:   1024,
		DefaultCharset: "utf8mb4",
		LogLevel:       "info",
	}
}

// Load reads a configuration file and overlays it on the defaults.
func Load(path string) (*Cfg, error) {
	raw, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load config file %s", path)
	}

	cfg := NewDefaultCfg()
	cfg.Raw = raw

	client := raw.Section("client")
	if key, err := client.GetKey("prefetch_size"); err == nil {
		if v, err := key.Uint64(); err == nil {
			cfg.PrefetchSize = v
		}
	}
	if client.HasKey("default_charset") {
		cfg.DefaultCharset = client.Key("default_charset").String()
	}

	log := raw.Section("log")
	cfg.LogError = log.Key("log_error").String()
	cfg.LogInfos = log.Key("log_infos").String()
	if log.HasKey("log_level") {
		cfg.LogLevel = log.Key("log_level").String()
	}

	return cfg, nil
}

// ApplyLogging pushes the log settings to the global logger.
func (c *Cfg) ApplyLogging() {
	logger.Init(logger.LogConfig{
		InfoLogPath:  c.LogInfos,
		ErrorLogPath: c.LogError,
		LogLevel:     c.LogLevel,
	})
}
