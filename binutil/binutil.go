package binutil

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/xiaonanln/gopress/gplog"
)

// SetupGPLog setup the gopress log system
func SetupGPLog(component string, logLevel string, logFile string, logStderr bool) {
	gplog.SetSource(component)
	gplog.Infof("Set log level to %s", logLevel)
	gplog.SetLevel(gplog.StringToLevel(logLevel))

	outputWriters := make([]io.Writer, 0, 2)
	if logFile != "" {
		var logFileWriter io.Writer
		logFileWriter = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100, // megabytes
			MaxBackups: 100,
			MaxAge:     30, //days
			Compress:   true,
		}

		outputWriters = append(outputWriters, logFileWriter)
	}

	if logStderr {
		outputWriters = append(outputWriters, os.Stderr)
	}

	if len(outputWriters) == 1 {
		gplog.SetOutput(outputWriters[0])
	} else {
		gplog.SetOutput(io.MultiWriter(outputWriters...))
	}
}
