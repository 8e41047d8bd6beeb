package service

import (
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounceWindow coalesces bursts of filesystem events into one reload.
// Editors commonly emit several events per save.
const debounceWindow = 200 * time.Millisecond

// watchContent watches dir and calls reload after each burst of markdown
// changes. The returned watcher must be closed by the caller.
func watchContent(dir string, logger *zap.SugaredLogger, reload func() error) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		var timer *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !isContentEvent(event) {
					continue
				}
				logger.Debugw("content change", "file", event.Name, "op", event.Op.String())
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounceWindow, func() {
					if err := reload(); err != nil {
						logger.Errorw("reload failed", "error", err)
					}
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Errorw("watch error", "error", err)
			}
		}
	}()

	logger.Infow("watching content directory", "dir", dir)
	return watcher, nil
}

func isContentEvent(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	name := strings.ToLower(event.Name)
	return strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".markdown")
}
