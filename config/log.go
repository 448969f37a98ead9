package config

import (
	"log"

	"github.com/natefinch/lumberjack"
)

// LogConfig describes the optional rotating log file.
type LogConfig struct {
	Logfile string
	MaxSize int `toml:"max_log_size"`
	MaxAge  int `toml:"max_log_age"`
}

// SetLogger redirects the standard logger to a rotating log file.
// With no Logfile the standard logger is left on stderr and nil is returned.
func (c *LogConfig) SetLogger() *lumberjack.Logger {
	if c == nil || c.Logfile == "" {
		log.Printf("Sending log messages to stderr since no log file specified.")
		return nil
	}
	l := &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize, // megabytes
		MaxAge:   c.MaxAge,  // days
	}
	log.SetOutput(l)
	return l
}
