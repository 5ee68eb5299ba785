// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package logger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattermost/mattermost/server/public/shared/mlog"
)

// Settings holds information used to initialize a new logger.
type Settings struct {
	EnableConsole bool   `default:"true"`
	ConsoleJson   bool   `default:"false"`
	ConsoleLevel  string `default:"ERROR" validate:"oneof:{TRACE, DEBUG, INFO, WARN, ERROR}"`
	EnableFile    bool   `default:"false"`
	FileJson      bool   `default:"true"`
	FileLevel     string `default:"INFO" validate:"oneof:{TRACE, DEBUG, INFO, WARN, ERROR}"`
	FileLocation  string `default:"babelcheck.log"`
}

// New returns a newly created logger configured with the given settings.
// The console target writes to stderr so that it never mixes with the
// validation report.
func New(logSettings *Settings) (*mlog.Logger, error) {
	log, err := mlog.NewLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	cfg, err := targets(logSettings)
	if err != nil {
		return nil, err
	}

	if err := log.ConfigureTargets(cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to configure logger: %w", err)
	}

	return log, nil
}

// Init initializes the global logger with the given settings and returns
// it so that the caller can flush it on exit.
func Init(logSettings *Settings) (*mlog.Logger, error) {
	log, err := New(logSettings)
	if err != nil {
		return nil, err
	}

	// Use this app logger as the global logger
	mlog.InitGlobalLogger(log)

	return log, nil
}

func targets(s *Settings) (mlog.LoggerConfiguration, error) {
	cfg := make(mlog.LoggerConfiguration)

	if s.EnableConsole {
		levels, err := levelsFor(s.ConsoleLevel)
		if err != nil {
			return nil, err
		}
		cfg["console"] = mlog.TargetCfg{
			Type:    "console",
			Format:  format(s.ConsoleJson),
			Options: json.RawMessage(`{"out": "stderr"}`),
			Levels:  levels,
		}
	}

	if s.EnableFile {
		levels, err := levelsFor(s.FileLevel)
		if err != nil {
			return nil, err
		}
		opts, err := json.Marshal(map[string]any{
			"filename": s.FileLocation,
			"compress": true,
		})
		if err != nil {
			return nil, err
		}
		cfg["file"] = mlog.TargetCfg{
			Type:    "file",
			Format:  format(s.FileJson),
			Options: opts,
			Levels:  levels,
		}
	}

	return cfg, nil
}

func format(asJSON bool) string {
	if asJSON {
		return "json"
	}
	return "plain"
}

// levelsFor returns the given level together with every more severe one.
func levelsFor(level string) ([]mlog.Level, error) {
	ordered := []mlog.Level{
		mlog.LvlPanic,
		mlog.LvlFatal,
		mlog.LvlError,
		mlog.LvlWarn,
		mlog.LvlInfo,
		mlog.LvlDebug,
		mlog.LvlTrace,
	}

	for i, lvl := range ordered {
		if strings.EqualFold(lvl.Name, level) {
			return ordered[:i+1], nil
		}
	}
	return nil, fmt.Errorf("unknown log level %q", level)
}
