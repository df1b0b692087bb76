package store

// Stores hands out typed accessors over the shared in-memory state.
// Construct once at process start and inject wherever data access is needed.
type Stores struct {
	mem *memory
}

func NewStores() *Stores {
	return &Stores{mem: newMemory()}
}

func (s *Stores) Conversations() ConversationStore {
	return newConversationStore(s.mem)
}

func (s *Stores) Messages() MessageStore {
	return newMessageStore(s.mem)
}
