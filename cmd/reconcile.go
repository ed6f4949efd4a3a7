package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
)

// runReconcileLoop pushes the desired state once immediately, then on every
// interval expiry, forever. A failed tick is reported and otherwise ignored;
// the next tick re-asserts the same state, which is the whole retry policy.
// When a config file is in play its directory is watched and a change
// reloads the desired state and triggers an immediate push.
func runReconcileLoop(interval time.Duration, watchPath string, reload func() error, tick func() error) {
	push := func() {
		if err := tick(); err != nil {
			color.Red("❌ push failed: %v", err)
			return
		}
		color.Green("✅ desired state pushed")
	}

	var events <-chan fsnotify.Event
	if watchPath != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ watcher error: %v\n", err)
		} else {
			defer watcher.Close()
			if err := watcher.Add(filepath.Dir(watchPath)); err != nil {
				fmt.Fprintf(os.Stderr, "❌ watcher.Add(%s): %v\n", watchPath, err)
			} else {
				events = watcher.Events
			}
		}
	}

	// initial pass
	push()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	for {
		select {
		case ev := <-events:
			if filepath.Clean(ev.Name) == filepath.Clean(watchPath) &&
				ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				fmt.Println("📄 config changed; pushing…")
				if err := reload(); err != nil {
					color.Yellow("⚠️  config reload failed, keeping previous state: %v", err)
				}
				push()
			}
		case <-ticker.C:
			fmt.Println("⏱️  Periodic push…")
			push()
		case <-stop:
			fmt.Println("\n🛑 Sidecar stopped.")
			return
		}
	}
}
