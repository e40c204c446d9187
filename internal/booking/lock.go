package booking

import "sync"

// roomLocks serializes the availability check and insert per room, so two
// concurrent requests for the same room cannot both pass the check. The
// storage layer's exclusion constraint remains as a backstop for multiple
// processes sharing one database.
type roomLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[int64]*sync.Mutex)}
}

// lock acquires the mutex for roomID and returns its unlock func.
func (r *roomLocks) lock(roomID int64) func() {
	r.mu.Lock()
	m, ok := r.locks[roomID]
	if !ok {
		m = &sync.Mutex{}
		r.locks[roomID] = m
	}
	r.mu.Unlock()

	m.Lock()
	return m.Unlock
}
