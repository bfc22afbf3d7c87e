package controller

import (
	"context"
	"sync"

	"github.com/jaevor/go-nanoid"

	"historycar/internal/gateway"
)

// Phase is the fetch half of a page's state machine.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// ReconcileStrategy picks how a list recovers after a successful delete. The
// two observed strategies both exist upstream; each entity type commits to one.
type ReconcileStrategy int

const (
	// ReconcileRefetch re-runs the full list fetch after a delete.
	ReconcileRefetch ReconcileStrategy = iota
	// ReconcileRemoveLocal filters the deleted id out of local state.
	ReconcileRemoveLocal
)

type Notification struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Text string `json:"text"`
}

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

var newNotificationID = mustNanoID(12)

func mustNanoID(length int) func() string {
	gen, err := nanoid.Standard(length)
	if err != nil {
		panic(err)
	}
	return gen
}

// Snapshot is an immutable copy of a lifecycle's state, safe to hand to
// renderers and websocket pushes.
type Snapshot[T any] struct {
	Phase         Phase          `json:"phase"`
	Items         []T            `json:"items"`
	Error         string         `json:"error,omitempty"`
	DeletingID    string         `json:"deletingId,omitempty"`
	Creating      bool           `json:"creating"`
	FormOpen      bool           `json:"formOpen"`
	Notifications []Notification `json:"notifications,omitempty"`
}

// FetchFunc produces the full collection for a page.
type FetchFunc[T any] func(ctx context.Context) gateway.Envelope[[]T]

// Lifecycle is the fetch/mutate state machine shared by every screen:
// Idle → Loading → Ready | Failed, with an orthogonal single-slot mutation
// sub-state. All methods are safe for concurrent use; fetches resolve on
// goroutines and stale or post-close resolutions are dropped.
type Lifecycle[T any] struct {
	mu            sync.Mutex
	phase         Phase
	items         []T
	err           string
	deletingID    string
	creating      bool
	formOpen      bool
	notifications []Notification
	gen           uint64
	closed        bool

	fetch     FetchFunc[T]
	idOf      func(T) string
	reconcile ReconcileStrategy
	onChange  func(Snapshot[T])
}

type LifecycleConfig[T any] struct {
	Fetch     FetchFunc[T]
	IDOf      func(T) string
	Reconcile ReconcileStrategy
	OnChange  func(Snapshot[T])
}

func NewLifecycle[T any](cfg LifecycleConfig[T]) *Lifecycle[T] {
	return &Lifecycle[T]{
		phase:     PhaseIdle,
		fetch:     cfg.Fetch,
		idOf:      cfg.IDOf,
		reconcile: cfg.Reconcile,
		onChange:  cfg.OnChange,
	}
}

func (l *Lifecycle[T]) snapshotLocked() Snapshot[T] {
	items := make([]T, len(l.items))
	copy(items, l.items)
	notes := make([]Notification, len(l.notifications))
	copy(notes, l.notifications)
	return Snapshot[T]{
		Phase:         l.phase,
		Items:         items,
		Error:         l.err,
		DeletingID:    l.deletingID,
		Creating:      l.creating,
		FormOpen:      l.formOpen,
		Notifications: notes,
	}
}

// Snapshot returns the current state.
func (l *Lifecycle[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *Lifecycle[T]) notifyLocked() func() {
	if l.onChange == nil {
		return func() {}
	}
	snap := l.snapshotLocked()
	cb := l.onChange
	return func() { cb(snap) }
}

// FetchInit moves the machine to Loading, clears any prior error, and returns
// the generation the caller must present when resolving. A later FetchInit
// supersedes all outstanding generations.
func (l *Lifecycle[T]) FetchInit() (uint64, bool) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return 0, false
	}
	l.gen++
	gen := l.gen
	l.phase = PhaseLoading
	l.err = ""
	notify := l.notifyLocked()
	l.mu.Unlock()
	notify()
	return gen, true
}

// ResolveFetch applies a fetch outcome. Resolutions carrying a stale
// generation, or arriving after Close, are discarded.
func (l *Lifecycle[T]) ResolveFetch(gen uint64, env gateway.Envelope[[]T]) {
	l.mu.Lock()
	if l.closed || gen != l.gen {
		l.mu.Unlock()
		return
	}
	if env.Success {
		l.phase = PhaseReady
		l.err = ""
		l.items = env.Data
		if l.items == nil {
			l.items = []T{}
		}
	} else {
		l.phase = PhaseFailed
		l.err = env.Message
	}
	notify := l.notifyLocked()
	l.mu.Unlock()
	notify()
}

// Refresh drives FetchInit/ResolveFetch asynchronously.
func (l *Lifecycle[T]) Refresh(ctx context.Context) {
	gen, ok := l.FetchInit()
	if !ok {
		return
	}
	go func() {
		l.ResolveFetch(gen, l.fetch(ctx))
	}()
}

// DeleteInit claims the single mutation slot for id. It fails when another
// delete is already in flight.
func (l *Lifecycle[T]) DeleteInit(id string) bool {
	l.mu.Lock()
	if l.closed || l.deletingID != "" {
		l.mu.Unlock()
		return false
	}
	l.deletingID = id
	notify := l.notifyLocked()
	l.mu.Unlock()
	notify()
	return true
}

// ResolveDelete releases the mutation slot and reconciles the list. With
// ReconcileRemoveLocal a successful delete filters the id out directly;
// deleting an id that is no longer present leaves the list unchanged. The
// return value tells the caller whether a full refetch is still owed.
func (l *Lifecycle[T]) ResolveDelete(id string, env gateway.Envelope[struct{}], successText string) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.deletingID = ""
	needRefetch := false
	if env.Success {
		if l.reconcile == ReconcileRemoveLocal {
			kept := l.items[:0:0]
			for _, item := range l.items {
				if l.idOf(item) != id {
					kept = append(kept, item)
				}
			}
			l.items = kept
		} else {
			needRefetch = true
		}
		text := successText
		if env.Message != "" {
			text = env.Message
		}
		l.pushNotificationLocked(NoticeSuccess, text)
	} else {
		l.pushNotificationLocked(NoticeError, env.Message)
	}
	notify := l.notifyLocked()
	l.mu.Unlock()
	notify()
	return needRefetch
}

// OpenForm and CloseForm track the creation form's visibility.
func (l *Lifecycle[T]) OpenForm() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.formOpen = true
	notify := l.notifyLocked()
	l.mu.Unlock()
	notify()
}

func (l *Lifecycle[T]) CloseForm() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.formOpen = false
	notify := l.notifyLocked()
	l.mu.Unlock()
	notify()
}

// CreateInit claims the creation flag, distinct from the fetch-loading flag.
func (l *Lifecycle[T]) CreateInit() bool {
	l.mu.Lock()
	if l.closed || l.creating {
		l.mu.Unlock()
		return false
	}
	l.creating = true
	notify := l.notifyLocked()
	l.mu.Unlock()
	notify()
	return true
}

// ResolveCreate clears the creation flag. On success the form closes; on
// failure it stays open so the user can correct the submission. Returns true
// when the list fetch should be re-run.
func (l *Lifecycle[T]) ResolveCreate(success bool, message string) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.creating = false
	if success {
		l.formOpen = false
		l.pushNotificationLocked(NoticeSuccess, message)
	} else {
		l.pushNotificationLocked(NoticeError, message)
	}
	notify := l.notifyLocked()
	l.mu.Unlock()
	notify()
	return success
}

func (l *Lifecycle[T]) pushNotificationLocked(kind, text string) {
	if text == "" {
		return
	}
	l.notifications = append(l.notifications, Notification{
		ID:   newNotificationID(),
		Kind: kind,
		Text: text,
	})
}

// PushNotification records a transient toast entry.
func (l *Lifecycle[T]) PushNotification(kind, text string) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.pushNotificationLocked(kind, text)
	notify := l.notifyLocked()
	l.mu.Unlock()
	notify()
}

// DrainState returns the current state and consumes its notifications, so a
// toast is delivered to exactly one page read.
func (l *Lifecycle[T]) DrainState() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	snap := l.snapshotLocked()
	l.notifications = nil
	return snap
}

// DrainNotifications returns pending notifications and clears them.
func (l *Lifecycle[T]) DrainNotifications() []Notification {
	l.mu.Lock()
	defer l.mu.Unlock()
	notes := l.notifications
	l.notifications = nil
	return notes
}

// Close marks the controller as unmounted. Every in-flight resolution becomes
// a no-op afterwards.
func (l *Lifecycle[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}
