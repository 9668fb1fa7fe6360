package flow

import "sync"

// userLocks serializa o tratamento de eventos por usuário. O gateway entrega
// os eventos de cada conversa em ordem, mas o lock por chave protege contra
// entregas fora de ordem sem bloquear usuários entre si.
type userLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[int64]*sync.Mutex)}
}

// lock adquire o mutex do usuário e devolve a função de liberação.
func (u *userLocks) lock(userID int64) func() {
	u.mu.Lock()
	m, ok := u.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		u.locks[userID] = m
	}
	u.mu.Unlock()

	m.Lock()
	return m.Unlock
}
