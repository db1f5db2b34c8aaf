// ============================================================================
// valid8 - Logical Argument Validator
// ============================================================================
//
// Package:     version
// Description: Build metadata, overridable through -ldflags
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/msto63/valid8/pkg/core/version.Version=1.2.0"
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build metadata of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Short returns "valid8 v<version>"
func (i Info) Short() string {
	return "valid8 v" + i.Version
}

// String renders the multi-line version report
func (i Info) String() string {
	return fmt.Sprintf("%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s\n",
		i.Short(), i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
