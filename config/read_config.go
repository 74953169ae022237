package config

import (
	"strings"

	"encoding/json"

	"sync"

	"path"

	"github.com/go-ini/ini"
	"github.com/xiaonanln/gopress/compress"
	"github.com/xiaonanln/gopress/gplog"
)

const (
	_DEFAULT_CONFIG_FILE    = "gopress.ini"
	_DEFAULT_ALGORITHM      = "lzw"
	_DEFAULT_LEVEL          = compress.DefaultLevel
	_DEFAULT_LZW_TABLE_SIZE = compress.DefaultLzwTableSize
	_DEFAULT_LOG_FILE       = "gopress.log"
	_DEFAULT_LOG_LEVEL      = "debug"
)

var (
	configFilePath = _DEFAULT_CONFIG_FILE
	gopressConfig  *GopressConfig
	configLock     sync.Mutex
)

// CompressionConfig defines fields of compression config
type CompressionConfig struct {
	Algorithm       string
	Level           int
	LzwMaxTableSize int
}

// LogConfig defines fields of log config
type LogConfig struct {
	File   string
	Stderr bool
	Level  string
}

// GopressConfig defines the total gopress config file structure
type GopressConfig struct {
	Compression CompressionConfig
	Log         LogConfig
}

// SetConfigFile sets the config file path (gopress.ini by default)
func SetConfigFile(f string) {
	configFilePath = f
}

// GetConfigDir returns the directory of gopress.ini
func GetConfigDir() string {
	dir, _ := path.Split(configFilePath)
	return dir
}

// GetConfigFilePath returns the config file path
func GetConfigFilePath() string {
	return configFilePath
}

// Get returns the total gopress config
func Get() *GopressConfig {
	configLock.Lock()
	defer configLock.Unlock() // protect concurrent access
	if gopressConfig == nil {
		gopressConfig = readGopressConfig()
	}
	return gopressConfig
}

// Reload forces gopress to reload the whole config
func Reload() *GopressConfig {
	configLock.Lock()
	gopressConfig = nil
	configLock.Unlock()

	return Get()
}

// GetCompression returns the compression config
func GetCompression() *CompressionConfig {
	return &Get().Compression
}

// GetLog returns the log config
func GetLog() *LogConfig {
	return &Get().Log
}

// DumpPretty format config to string in pretty format
func DumpPretty(cfg interface{}) string {
	s, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err.Error()
	}
	return string(s)
}

func readGopressConfig() *GopressConfig {
	config := GopressConfig{}
	gplog.Infof("Using config file: %s", configFilePath)
	iniFile, err := ini.Load(configFilePath)
	checkConfigError(err, "")

	readCompressionConfig(iniFile.Section("compression"), &config.Compression)
	readLogConfig(iniFile.Section("log"), &config.Log)

	for _, sec := range iniFile.Sections() {
		secName := strings.ToLower(sec.Name())
		if secName == "default" {
			continue
		}

		if secName == "compression" || secName == "log" {
			// already read above
		} else {
			gplog.Errorf("unknown section: %s", secName)
		}
	}

	validateConfig(&config)
	return &config
}

func readCompressionConfig(sec *ini.Section, cc *CompressionConfig) {
	cc.Algorithm = _DEFAULT_ALGORITHM
	cc.Level = _DEFAULT_LEVEL
	cc.LzwMaxTableSize = _DEFAULT_LZW_TABLE_SIZE

	for _, key := range sec.Keys() {
		name := strings.ToLower(key.Name())
		if name == "algorithm" {
			cc.Algorithm = key.MustString(cc.Algorithm)
		} else if name == "level" {
			cc.Level = key.MustInt(cc.Level)
		} else if name == "lzw_max_table_size" {
			cc.LzwMaxTableSize = key.MustInt(cc.LzwMaxTableSize)
		} else {
			gplog.Panicf("section %s has unknown key: %s", sec.Name(), key.Name())
		}
	}
}

func readLogConfig(sec *ini.Section, lc *LogConfig) {
	lc.File = _DEFAULT_LOG_FILE
	lc.Stderr = true
	lc.Level = _DEFAULT_LOG_LEVEL

	for _, key := range sec.Keys() {
		name := strings.ToLower(key.Name())
		if name == "file" {
			lc.File = key.MustString(lc.File)
		} else if name == "stderr" {
			lc.Stderr = key.MustBool(lc.Stderr)
		} else if name == "level" {
			lc.Level = key.MustString(lc.Level)
		} else {
			gplog.Panicf("section %s has unknown key: %s", sec.Name(), key.Name())
		}
	}
}

func checkConfigError(err error, msg string) {
	if err != nil {
		if msg == "" {
			msg = err.Error()
		}
		gplog.Panicf("read config error: %s", msg)
	}
}

func validateConfig(config *GopressConfig) {
	cc := &config.Compression
	if _, err := compress.NewCompressorLevel(cc.Algorithm, cc.Level); err != nil {
		gplog.Panicf("invalid compression config: %s", err)
	}
	if strings.ToLower(cc.Algorithm) == "lzw" {
		if _, err := compress.NewLzwCompressor(cc.LzwMaxTableSize); err != nil {
			gplog.Panicf("invalid compression config: %s", err)
		}
	}
}
