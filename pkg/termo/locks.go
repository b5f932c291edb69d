package termo

import "sync"

// thermometerLocks hands out one mutex per thermometer id. Holding it
// across the read-decide-write sequence of a submission keeps two
// concurrent first submissions from both inserting for the same civil
// day; the loser observes the winner's row and takes the amend path.
type thermometerLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func (s *thermometerLocks) lock(thermometerID uint) (unlock func()) {
	s.mu.Lock()
	if s.locks == nil {
		s.locks = make(map[uint]*sync.Mutex)
	}
	l, exists := s.locks[thermometerID]
	if !exists {
		l = &sync.Mutex{}
		s.locks[thermometerID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}
