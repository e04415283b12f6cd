package session

// Store holds live sessions for the duration of one visit. Sessions are
// never persisted; implementations may evict idle entries.
type Store interface {
	Put(sess *Session)
	Get(id string) (*Session, bool)
}
