package scenes

import (
	cfg "github.com/automoto/echoes-of-ember/config"
)

var tuning struct {
	watcher *cfg.Watcher
	path    string
	pending bool
}

// WatchTuning makes level scenes pick up edits to the tuning file at path.
// Changes apply when the next level instance is built.
func WatchTuning(w *cfg.Watcher, path string) {
	tuning.watcher = w
	tuning.path = path
}

// pollTuning drains the watcher without blocking.
func pollTuning() {
	if tuning.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-tuning.watcher.Events:
			if !ok {
				tuning.watcher = nil
				return
			}
			logger.Info("tuning file changed", "path", path)
			tuning.pending = true
		case err, ok := <-tuning.watcher.Errors:
			if !ok {
				tuning.watcher = nil
				return
			}
			logger.Warn("tuning watcher error", "err", err)
		default:
			return
		}
	}
}

func applyPendingTuning() {
	if !tuning.pending {
		return
	}
	tuning.pending = false
	used, err := cfg.Load(tuning.path)
	if err != nil {
		logger.Warn("tuning reload failed, keeping previous values", "err", err)
		return
	}
	logger.Info("tuning reloaded", "path", used)
}
