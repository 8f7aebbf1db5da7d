package main

import (
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"rosedit"
)

// cmdWatch follows dir for .ROS writes and logs each file's discovered
// table shape, mirroring priv_ach's fsnotify-driven save watcher.
func cmdWatch(logger *zap.Logger, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}
	logger.Info("watching for roster writes", zap.String("dir", dir))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) && strings.HasSuffix(strings.ToUpper(event.Name), ".ROS") {
				handleRosterWrite(logger, event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func handleRosterWrite(logger *zap.Logger, path string) {
	buf, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("failed to read roster", zap.String("file", path), zap.Error(err))
		return
	}
	ed, err := rosedit.NewWithConfig(buf, discoveryConfig())
	if err != nil {
		logger.Warn("failed to bind roster", zap.String("file", path), zap.Error(err))
		return
	}
	logger.Info("roster updated",
		zap.String("file", path),
		zap.Int("player_count", ed.PlayerCount()),
		zap.Int("team_count", ed.TeamCount()),
	)
}
