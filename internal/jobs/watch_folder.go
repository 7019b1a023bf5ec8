package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gofrs/flock"
	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"uhc-registry.io/registry/internal/config"
	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/intake"
	"uhc-registry.io/registry/internal/pkg/logger"
)

// watchActor is the acting user recorded for watched-folder operations.
const watchActor = "watch-folder"

const (
	processedSubdir = "processed"
	failedSubdir    = "failed"
)

// WatchFolder ingests .uhc containers dropped into a watched directory.
// fsnotify events trigger a sweep; a poll ticker backs them up for network
// mounts where events are unreliable. A file is only picked up once its size
// is unchanged between two sweeps and its advisory file lock is free, so a
// container still being copied in is left alone.
type WatchFolder struct {
	cfg     config.WatchConfig
	service *intake.Service
	river   *river.Client[pgx.Tx]

	// sizes holds the last observed size per candidate path between sweeps.
	sizes map[string]int64
	done  chan struct{}
}

// NewWatchFolder creates the watched-folder ingester. The river client may
// be nil when auto-advance is disabled.
func NewWatchFolder(cfg config.WatchConfig, service *intake.Service, riverClient *river.Client[pgx.Tx]) *WatchFolder {
	return &WatchFolder{
		cfg:     cfg,
		service: service,
		river:   riverClient,
		sizes:   make(map[string]int64),
		done:    make(chan struct{}),
	}
}

// Start begins watching. It returns after the watcher is installed; the
// sweep loop runs until ctx is cancelled.
func (w *WatchFolder) Start(ctx context.Context) error {
	if !w.cfg.Enabled {
		return nil
	}
	for _, dir := range []string{
		w.cfg.Dir,
		filepath.Join(w.cfg.Dir, processedSubdir),
		filepath.Join(w.cfg.Dir, failedSubdir),
	} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create watch directory %s: %w", dir, err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(w.cfg.Dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", w.cfg.Dir, err)
	}

	logger.Info("Watched-folder ingestion started",
		zap.String("dir", w.cfg.Dir),
		zap.Duration("poll_interval", w.cfg.PollInterval),
		zap.Bool("auto_advance", w.cfg.AutoAdvance),
	)
	go w.run(ctx, watcher)
	return nil
}

// Stop blocks until the sweep loop has exited. Start's context must already
// be cancelled.
func (w *WatchFolder) Stop() {
	if !w.cfg.Enabled {
		return
	}
	<-w.done
}

func (w *WatchFolder) run(ctx context.Context, watcher *fsnotify.Watcher) {
	defer close(w.done)
	defer watcher.Close()

	interval := w.cfg.PollInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Pick up files that were already waiting when we started.
	w.sweep(ctx)
	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write) {
				if isContainerName(ev.Name) {
					w.sweep(ctx)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Watched-folder event error", zap.Error(err))
		}
	}
}

// isContainerName reports whether path names a .uhc container.
func isContainerName(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".uhc")
}

// sweep scans the watch directory once and ingests every stable container.
func (w *WatchFolder) sweep(ctx context.Context) {
	entries, err := os.ReadDir(w.cfg.Dir)
	if err != nil {
		logger.Warn("Watched-folder scan failed",
			zap.String("dir", w.cfg.Dir), zap.Error(err))
		return
	}

	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if ctx.Err() != nil {
			return
		}
		if entry.IsDir() || !isContainerName(entry.Name()) {
			continue
		}
		path := filepath.Join(w.cfg.Dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			continue
		}
		seen[path] = true

		prev, known := w.sizes[path]
		if !known || prev != info.Size() {
			// First sighting, or still growing. Next sweep decides.
			w.sizes[path] = info.Size()
			continue
		}
		w.pickUp(ctx, path)
		delete(w.sizes, path)
	}

	// Forget files that disappeared between sweeps.
	for path := range w.sizes {
		if !seen[path] {
			delete(w.sizes, path)
		}
	}
}

// pickUp ingests one stable container and files it under processed/ or
// failed/. The exporter's file lock is honoured: a locked container is left
// for a later sweep.
func (w *WatchFolder) pickUp(ctx context.Context, path string) {
	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil || !locked {
		logger.Debug("Container still locked; deferring pickup",
			zap.String("path", path))
		return
	}
	defer fl.Unlock()

	if err := w.ingest(ctx, path); err != nil {
		logger.Error("Watched-folder ingest failed",
			zap.String("path", path), zap.Error(err))
		w.moveTo(path, failedSubdir)
		return
	}
	w.moveTo(path, processedSubdir)
}

func (w *WatchFolder) ingest(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open container: %w", err)
	}
	defer f.Close()

	result, err := w.service.Receive(ctx, f, filepath.Base(path), domain.ImportWatchedFolder, watchActor)
	if err != nil {
		return err
	}

	pkg := result.Package
	if result.IsDuplicatePackage {
		logger.Info("Watched folder delivered an already received package",
			zap.String("path", path),
			zap.String("package_id", pkg.ID.String()),
			zap.String("package_number", pkg.PackageNumber),
		)
		return nil
	}

	logger.Info("Package received from watched folder",
		zap.String("path", path),
		zap.String("package_id", pkg.ID.String()),
		zap.String("package_number", pkg.PackageNumber),
		zap.String("status", string(pkg.Status)),
		zap.Strings("warnings", result.Warnings),
	)

	if w.cfg.AutoAdvance && w.river != nil && pkg.Status == domain.StatusPending {
		// Enqueue failure is not an ingest failure: the package row exists
		// and can be advanced manually.
		if _, err := w.river.Insert(ctx, PackageIngestArgs{PackageID: pkg.ID, Actor: watchActor}, nil); err != nil {
			logger.Warn("Could not enqueue package ingest job",
				zap.String("package_id", pkg.ID.String()), zap.Error(err))
		}
	}
	return nil
}

// moveTo files the container under a sibling subdirectory, suffixing the
// name with a timestamp on collision.
func (w *WatchFolder) moveTo(path, subdir string) {
	dest := filepath.Join(w.cfg.Dir, subdir, filepath.Base(path))
	if _, err := os.Stat(dest); err == nil {
		ext := filepath.Ext(dest)
		dest = strings.TrimSuffix(dest, ext) + "-" + time.Now().UTC().Format("20060102T150405") + ext
	}
	if err := os.Rename(path, dest); err != nil {
		logger.Warn("Could not move ingested container",
			zap.String("path", path), zap.String("dest", dest), zap.Error(err))
	}
}
