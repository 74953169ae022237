package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/xiaonanln/gopress/binutil"
	"github.com/xiaonanln/gopress/config"
	"github.com/xiaonanln/gopress/gputils"
)

var args struct {
	configFile string
}

func parseArgs() {
	flag.StringVar(&args.configFile, "configfile", "", "set config file path")
	flag.Parse()
}

func main() {
	parseArgs()
	cmdArgs := flag.Args()

	if len(cmdArgs) == 0 {
		showMsg("no command to execute")
		flag.Usage()
		os.Exit(1)
	}

	cmd := cmdArgs[0]
	if cmd == "compress" {
		if len(cmdArgs) != 3 {
			showMsgAndQuit("usage: gopress [-configfile path] compress <input-image> <output>")
		}
		setupConfig()
		compressImage(cmdArgs[1], cmdArgs[2])
	} else if cmd == "decompress" {
		if len(cmdArgs) != 3 {
			showMsgAndQuit("usage: gopress [-configfile path] decompress <input> <output>")
		}
		setupConfig()
		decompressFile(cmdArgs[1], cmdArgs[2])
	} else if cmd == "info" {
		if len(cmdArgs) != 2 {
			showMsgAndQuit("usage: gopress info <file>")
		}
		info(cmdArgs[1])
	} else {
		showMsgAndQuit("unknown command: %s", cmd)
	}
}

func setupConfig() {
	if args.configFile != "" {
		config.SetConfigFile(args.configFile)
	}

	// config panics on malformed files; fail with a clean message instead
	paniced := gputils.RunPanicless(func() {
		config.Get()
	})
	if paniced {
		showMsgAndQuit("can not read config file: %s", config.GetConfigFilePath())
	}

	logConfig := config.GetLog()
	logFile := logConfig.File
	if logFile != "" && !filepath.IsAbs(logFile) {
		// log file is relative to the config file, not the working directory
		logFile = filepath.Join(config.GetConfigDir(), logFile)
	}
	binutil.SetupGPLog("gopress", logConfig.Level, logFile, logConfig.Stderr)
}
