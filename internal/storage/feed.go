package storage

import "sync"

// Collection names a group of records that change together.
type Collection string

const (
	CollectionExpenses   Collection = "expenses"
	CollectionRepayments Collection = "repayments"
	CollectionItinerary  Collection = "itinerary"
)

// Op is the kind of write that produced a change.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Change describes a committed write.
type Change struct {
	Collection Collection
	Op         Op
	ID         string
}

// Feed fans out change notifications to subscribers.
//
// Each subscriber has room for one pending notification. Publishing never
// blocks: when a subscriber has not consumed its previous notification the new
// one is dropped, since either tells the subscriber to reload the snapshot.
type Feed struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*subscriber
}

type subscriber struct {
	ch    chan Change
	wants map[Collection]bool // nil means every collection
}

func (s *subscriber) accepts(c Collection) bool {
	return s.wants == nil || s.wants[c]
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{subs: make(map[int]*subscriber)}
}

// Subscribe registers a new subscriber for the given collections, or for
// every collection when none are given.
func (f *Feed) Subscribe(collections ...Collection) (<-chan Change, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sub := &subscriber{ch: make(chan Change, 1)}
	if len(collections) > 0 {
		sub.wants = make(map[Collection]bool, len(collections))
		for _, c := range collections {
			sub.wants[c] = true
		}
	}

	id := f.nextID
	f.nextID++
	f.subs[id] = sub

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		// Close may already have released it.
		if sub, ok := f.subs[id]; ok {
			delete(f.subs, id)
			close(sub.ch)
		}
	}
	return sub.ch, cancel
}

// Publish notifies every subscriber of c.
func (f *Feed) Publish(c Change) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, sub := range f.subs {
		if !sub.accepts(c.Collection) {
			continue
		}
		select {
		case sub.ch <- c:
		default:
			// A notification is already pending.
		}
	}
}

// Len returns the number of active subscribers.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// Close cancels every subscription.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id, sub := range f.subs {
		delete(f.subs, id)
		close(sub.ch)
	}
}
