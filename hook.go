package emptystate

import (
	"fmt"
	"log"
	"reflect"
	"sync"

	"fyne.io/fyne/v2"
)

// The reload hook table ties a host widget's native reload operations to
// placeholder re-evaluation, so integrators only ever call the wrapper's
// Reload/ReloadItem and never an extra evaluation step. The table has two
// levels: a process-wide record per (concrete widget type, operation name)
// pair, created at most once for the process lifetime, and a per-instance
// dispatch entry routing fired operations to the live controller of that
// widget. Re-attaching a source on another instance of an already recorded
// type does not create a second type record. Dispatch entries are released
// when the source is detached or the wrapper's renderer is destroyed, so the
// table never outlives the wrapped widget's owner.
type hookKey struct {
	hostType reflect.Type
	op       string
}

var reloadHooks = struct {
	mu        sync.Mutex
	installed map[hookKey]struct{}
	targets   map[fyne.CanvasObject]*Controller
}{
	installed: make(map[hookKey]struct{}),
	targets:   make(map[fyne.CanvasObject]*Controller),
}

// installReloadHooks records the host's reload operations and registers its
// controller as the dispatch target. It panics when the host advertises an
// operation its concrete widget type does not implement; that is a
// programmer error in a Host adapter, not a runtime condition.
func installReloadHooks(host Host, ctrl *Controller) {
	hostType := reflect.TypeOf(host.Object())

	reloadHooks.mu.Lock()
	defer reloadHooks.mu.Unlock()

	for _, op := range host.ReloadOps() {
		key := hookKey{hostType: hostType, op: op}
		if _, ok := reloadHooks.installed[key]; ok {
			continue
		}
		if _, ok := hostType.MethodByName(op); !ok {
			panic(fmt.Sprintf("emptystate: %v does not implement reload operation %q", hostType, op))
		}
		reloadHooks.installed[key] = struct{}{}
	}
	reloadHooks.targets[host.Object()] = ctrl
}

// removeReloadTarget drops the per-instance dispatch entry. Type records
// stay installed for the process lifetime.
func removeReloadTarget(host Host) {
	reloadHooks.mu.Lock()
	defer reloadHooks.mu.Unlock()
	delete(reloadHooks.targets, host.Object())
}

// fireReloadHook runs after the native reload operation already executed;
// it re-evaluates the placeholder of the widget instance the operation ran
// on. Unknown instances and uninstalled operations are ignored.
func fireReloadHook(obj fyne.CanvasObject, op string) {
	key := hookKey{hostType: reflect.TypeOf(obj), op: op}

	reloadHooks.mu.Lock()
	_, installed := reloadHooks.installed[key]
	ctrl := reloadHooks.targets[obj]
	reloadHooks.mu.Unlock()

	if !installed {
		log.Printf("Warning: reload operation %q fired for %v without an installed hook", op, key.hostType)
		return
	}
	if ctrl != nil {
		ctrl.Reevaluate()
	}
}

// installedHookCount returns the number of (type, operation) records; used
// by tests to assert at-most-once installation.
func installedHookCount() int {
	reloadHooks.mu.Lock()
	defer reloadHooks.mu.Unlock()
	return len(reloadHooks.installed)
}

// reloadTargetCount returns the number of live dispatch entries; used by
// tests to assert that discarded wrappers are released.
func reloadTargetCount() int {
	reloadHooks.mu.Lock()
	defer reloadHooks.mu.Unlock()
	return len(reloadHooks.targets)
}
