package storage

import "sync"

// changeNotifier fans a change signal out to query subscribers. Sends never
// block: each subscriber channel has a buffer of one and a pending signal is
// left in place, coalescing bursts of mutations into a single wake-up.
type changeNotifier struct {
	subs   map[uint64]chan struct{}
	mu     sync.Mutex
	nextID uint64
	closed bool
}

func newChangeNotifier() *changeNotifier {
	return &changeNotifier{subs: make(map[uint64]chan struct{})}
}

// subscribe registers a new subscriber and returns its signal channel along
// with a cancel function. Cancel is idempotent.
func (n *changeNotifier) subscribe() (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan struct{}, 1)
	if n.closed {
		close(ch)
		return ch, func() {}
	}

	id := n.nextID
	n.nextID++
	n.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			if _, ok := n.subs[id]; ok {
				delete(n.subs, id)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// broadcast signals all subscribers that the record set changed.
func (n *changeNotifier) broadcast() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
			// A signal is already pending; the subscriber will re-query
			// and observe this change too.
		}
	}
}

// close tears down all subscriptions. Subscribers see their channel close.
func (n *changeNotifier) close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true
	for id, ch := range n.subs {
		delete(n.subs, id)
		close(ch)
	}
}
