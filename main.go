package main

import (
	"os"
	"runtime/debug"

	"github.com/gigurra/morse/cmd/morse"
)

func main() {
	cmd := morse.Cmd()
	cmd.Version = appVersion()
	cmd.SetArgs(morse.NormalizeArgs(os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		os.Exit(morse.ExitArgParse)
	}
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
