package folio

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// contentDebounce coalesces the burst of filesystem events editors emit
// when saving into a single reload.
const contentDebounce = 500 * time.Millisecond

// watchContent watches the content document's directory (editors often
// replace the file rather than write in place) and reloads SiteData on
// change. Returns a stop function.
func (a *App) watchContent() (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(a.Config.ContentPath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	target := filepath.Clean(a.Config.ContentPath)

	go func() {
		var timer *time.Timer
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(contentDebounce, a.reloadContent)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("folio: content watch error: %v", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}

// reloadContent re-parses the content document and swaps it in. A broken
// document keeps the previous content serving.
func (a *App) reloadContent() {
	data, err := LoadSiteData(a.Config.ContentPath)
	if err != nil {
		log.Printf("folio: content reload failed, keeping previous content: %v", err)
		return
	}
	a.content.set(data)
	log.Printf("folio: content reloaded from %s", a.Config.ContentPath)
	if a.reload != nil {
		a.reload.Broadcast()
	}
}
