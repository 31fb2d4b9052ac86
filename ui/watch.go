package ui

import (
	"os"
	"path/filepath"
	"time"

	"github.com/radovskyb/watcher"

	"github.com/doums/apekey/logging"
)

// startWatcher watches the xmonad config file and sends a notification
// on updateCh whenever it changes. The parent directory is watched
// rather than the file itself so editors that replace the file on save
// (vim, emacs) are still caught.
func startWatcher(path string, updateCh chan<- struct{}) {
	w := watcher.New()
	w.SetMaxEvents(1)
	w.FilterOps(watcher.Write, watcher.Create, watcher.Rename, watcher.Move)

	target := filepath.Clean(path)
	w.AddFilterHook(func(info os.FileInfo, fullPath string) error {
		if info.IsDir() {
			return nil
		}
		if filepath.Clean(fullPath) != target {
			return watcher.ErrSkip
		}
		return nil
	})

	if err := w.Add(filepath.Dir(target)); err != nil {
		logging.Logger.Warn("Failed to watch the config directory",
			"path", filepath.Dir(target), "error", err)
		return
	}

	go func() {
		for {
			select {
			case event := <-w.Event:
				logging.Logger.Debug("Config file changed", "event", event.Op.String())
				select {
				case updateCh <- struct{}{}:
				default:
				}
			case err := <-w.Error:
				logging.Logger.Warn("Watcher error", "error", err)
				return
			case <-w.Closed:
				return
			}
		}
	}()

	if err := w.Start(500 * time.Millisecond); err != nil {
		logging.Logger.Warn("Failed to start the file watcher", "error", err)
	}
}
