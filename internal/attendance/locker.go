package attendance

import "sync"

// employeeLocker serializes recording per employee so the open-event check
// and the insert cannot interleave between two kiosk requests.
type employeeLocker struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newEmployeeLocker() *employeeLocker {
	return &employeeLocker{locks: make(map[int64]*sync.Mutex)}
}

func (l *employeeLocker) lock(employeeID int64) func() {
	l.mu.Lock()
	m, ok := l.locks[employeeID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[employeeID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
