// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Info describes the babelcheck binary as recorded by the Go toolchain.
type Info struct {
	Commit    string    `json:"commit"`
	BuildTime time.Time `json:"build_time"`
	Modified  bool      `json:"modified"`
	GoVersion string    `json:"go_version"`
}

// GetInfo reads the VCS settings embedded in the binary.
func GetInfo() Info {
	info := Info{
		Commit:    "unknown",
		GoVersion: "unknown",
	}

	build, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = build.GoVersion

	for _, setting := range build.Settings {
		if setting.Value == "" {
			continue
		}
		switch setting.Key {
		case "vcs.revision":
			info.Commit = setting.Value
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
				info.BuildTime = t
			}
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}

	return info
}

// Short returns the abbreviated commit, marked when the tree was dirty.
func (i Info) Short() string {
	commit := i.Commit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if i.Modified {
		commit += "-dirty"
	}
	return commit
}

func (i Info) String() string {
	buildTime := "unknown"
	if !i.BuildTime.IsZero() {
		buildTime = i.BuildTime.Format("2006-01-02 15:04:05")
	}

	modified := ""
	if i.Modified {
		modified = " (modified)"
	}

	return fmt.Sprintf("Commit: %s%s\nBuild Time: %s\nGo Version: %s", i.Commit, modified, buildTime, i.GoVersion)
}
