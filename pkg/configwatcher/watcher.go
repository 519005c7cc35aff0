package configwatcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"quizmaster_backend/internal/config"
	"quizmaster_backend/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const configFile = "config.yaml"

type Reloader func(cfg *config.Config)

// Watcher 监听配置目录，config.yaml 变化后防抖重新加载
type Watcher struct {
	Dir      string
	Debounce time.Duration
	Reload   Reloader
}

func New(dir string, reload Reloader) *Watcher {
	return &Watcher{Dir: dir, Debounce: time.Second, Reload: reload}
}

// Run 阻塞直到 ctx 结束。监听的是目录而非文件，编辑器的原子替换也能捕获。
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	defer watcher.Close()

	absDir, err := filepath.Abs(w.Dir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	if err := watcher.Add(absDir); err != nil {
		return fmt.Errorf("watch config dir: %w", err)
	}

	target := filepath.Join(absDir, configFile)
	timer := time.NewTimer(w.Debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// 防抖处理
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.Debounce)
		case <-timer.C:
			newCfg, err := config.LoadConfig(w.Dir)
			if err != nil {
				logger.Log.Error("Failed to reload config", zap.Error(err))
				continue
			}
			logger.Log.Info("Config reloaded", zap.String("dir", w.Dir))
			w.Reload(newCfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Log.Error("Config watcher error", zap.Error(err))
		}
	}
}
