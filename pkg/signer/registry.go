package signer

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProviderInfo describes a wallet provider the way it announces itself.
type ProviderInfo struct {
	UUID uuid.UUID
	Name string
	Icon string
	RDNS string
}

type EventKind int

const (
	SignerAdded EventKind = iota
	SignerChanged
	SignerRemoved
)

type Event struct {
	Kind   EventKind
	Info   ProviderInfo
	Signer Signer
}

type entry struct {
	info   ProviderInfo
	signer Signer
}

// Registry collects signers announced by wallet providers and notifies subscribers.
type Registry struct {
	mu          sync.Mutex
	entries     []*entry
	subscribers map[uint64]func(Event)
	nextSub     uint64
	logs        *zap.SugaredLogger
}

func NewRegistry(logger *zap.SugaredLogger) *Registry {
	return &Registry{
		subscribers: map[uint64]func(Event){},
		logs:        logger,
	}
}

// Announce registers signer under info.UUID, replacing a signer announced
// earlier with the same UUID. A nil UUID gets a random one. It returns the
// UUID used.
func (r *Registry) Announce(info ProviderInfo, s Signer) uuid.UUID {
	if info.UUID == uuid.Nil {
		info.UUID = uuid.New()
	}

	r.mu.Lock()
	kind := SignerAdded
	replaced := false
	for _, e := range r.entries {
		if e.info.UUID == info.UUID {
			e.info, e.signer = info, s
			kind, replaced = SignerChanged, true
			break
		}
	}
	if !replaced {
		r.entries = append(r.entries, &entry{info: info, signer: s})
	}
	subs := r.snapshotSubscribers()
	r.mu.Unlock()

	r.logs.Infow("signer announced",
		"uuid", info.UUID.String(),
		"name", info.Name,
		"replaced", replaced,
	)
	notify(subs, Event{Kind: kind, Info: info, Signer: s})
	return info.UUID
}

// Remove drops the signer registered under id. It reports whether one was registered.
func (r *Registry) Remove(id uuid.UUID) bool {
	r.mu.Lock()
	var removed *entry
	for i, e := range r.entries {
		if e.info.UUID == id {
			removed = e
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
	subs := r.snapshotSubscribers()
	r.mu.Unlock()

	if removed == nil {
		return false
	}
	r.logs.Infow("signer removed", "uuid", id.String(), "name", removed.info.Name)
	notify(subs, Event{Kind: SignerRemoved, Info: removed.info, Signer: removed.signer})
	return true
}

// Subscribe calls fn for every later change. The returned func stops the notifications.
func (r *Registry) Subscribe(fn func(Event)) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSub
	r.nextSub++
	r.subscribers[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subscribers, id)
	}
}

func (r *Registry) Get(id uuid.UUID) (Signer, ProviderInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if e.info.UUID == id {
			return e.signer, e.info, true
		}
	}
	return nil, ProviderInfo{}, false
}

// Signers lists the registered signers in announcement order.
func (r *Registry) Signers() []Signer {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Signer, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.signer)
	}
	return out
}

func (r *Registry) snapshotSubscribers() []func(Event) {
	subs := make([]func(Event), 0, len(r.subscribers))
	for _, fn := range r.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func(Event), ev Event) {
	for _, fn := range subs {
		fn(ev)
	}
}
