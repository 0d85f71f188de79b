package interfaces

import "recibozap/internal/domain/entities"

// ISessionStore is the volatile conversation store, keyed by phone.
//
// Implementations must not corrupt state under racing webhook handlers for the
// same key: Put replaces the whole session atomically and callers mutate
// copies, never the stored value. A lookup miss means "new conversation".

type ISessionStore interface {
	Get(phone string) (entities.Session, bool)
	Put(s entities.Session)
	Delete(phone string)
	All() []entities.Session
}
