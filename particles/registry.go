package particles

import "time"

// Unlimited keeps a registered emitter or affector alive until it is
// explicitly disconnected or cleared.
const Unlimited time.Duration = 0

// entryRemover is the narrow view of a registry that a Connection holds on
// to. Lookups go through the identity token, so a handle whose entry is long
// gone stays inert.
type entryRemover interface {
	removeEntry(id uint64)
}

// Connection is a revocation handle for a registered emitter or affector.
// The zero value is inert.
type Connection struct {
	target entryRemover
	id     uint64
}

// Disconnect removes the callback this handle was returned for. It is
// idempotent: disconnecting twice, or after the entry already expired or was
// cleared, is a no-op and never affects other entries.
func (c Connection) Disconnect() {
	if c.target != nil {
		c.target.removeEntry(c.id)
	}
}

type entry[F any] struct {
	fn F
	// timeUntilRemoval counts down each frame; Unlimited means the entry
	// never expires on its own.
	timeUntilRemoval time.Duration
	id               uint64
}

// registry is an ordered collection of time-bounded callbacks. Both the
// emitter and the affector registries are instances of it; only the callback
// signature differs.
type registry[F any] struct {
	entries []entry[F]
	lastID  uint64
}

func (r *registry[F]) add(fn F, timeUntilRemoval time.Duration) Connection {
	r.lastID++
	r.entries = append(r.entries, entry[F]{
		fn:               fn,
		timeUntilRemoval: timeUntilRemoval,
		id:               r.lastID,
	})
	return Connection{target: r, id: r.lastID}
}

func (r *registry[F]) removeEntry(id uint64) {
	for i := range r.entries {
		if r.entries[i].id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

func (r *registry[F]) clear() {
	r.entries = r.entries[:0]
}

// runAndExpire invokes every entry in registration order, then applies the
// expiry countdown to it. An entry is still invoked on the frame its time
// runs out. Callbacks must not mutate the registry they are registered with.
func (r *registry[F]) runAndExpire(dt time.Duration, invoke func(fn F)) {
	w := 0
	for i := range r.entries {
		invoke(r.entries[i].fn)
		if expired(&r.entries[i], dt) {
			continue
		}
		r.entries[w] = r.entries[i]
		w++
	}
	r.entries = r.entries[:w]
}

// expire applies only the countdown, for registries whose callbacks were
// already invoked elsewhere this frame.
func (r *registry[F]) expire(dt time.Duration) {
	w := 0
	for i := range r.entries {
		if expired(&r.entries[i], dt) {
			continue
		}
		r.entries[w] = r.entries[i]
		w++
	}
	r.entries = r.entries[:w]
}

func expired[F any](e *entry[F], dt time.Duration) bool {
	if e.timeUntilRemoval == Unlimited {
		return false
	}
	e.timeUntilRemoval -= dt
	return e.timeUntilRemoval <= 0
}
