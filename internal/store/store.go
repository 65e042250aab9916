package store

// Store is a bucketed key-value storage interface. Get on a missing bucket or
// key returns (nil, nil). Implementations: bolt (on disk) and memory.
type Store interface {
	Get(bucket, key []byte) ([]byte, error)
	Set(bucket, key, value []byte) error
	Delete(bucket, key []byte) error
	Close() error
}

// Slot is a single named location holding one serialized value.
// Load reports ok=false when nothing has been saved yet.
type Slot interface {
	Load() (data []byte, ok bool, err error)
	Save(data []byte) error
}

// KeySlot exposes one key of a Store as a Slot.
type KeySlot struct {
	st     Store
	bucket []byte
	key    []byte
}

// NewKeySlot returns a Slot bound to bucket/key in st.
func NewKeySlot(st Store, bucket, key string) *KeySlot {
	return &KeySlot{st: st, bucket: []byte(bucket), key: []byte(key)}
}

func (s *KeySlot) Load() ([]byte, bool, error) {
	v, err := s.st.Get(s.bucket, s.key)
	if err != nil {
		return nil, false, err
	}
	return v, v != nil, nil
}

func (s *KeySlot) Save(data []byte) error {
	return s.st.Set(s.bucket, s.key, data)
}

// Clear removes the slot's value.
func (s *KeySlot) Clear() error {
	return s.st.Delete(s.bucket, s.key)
}

// Name returns "bucket/key", for log lines.
func (s *KeySlot) Name() string {
	return string(s.bucket) + "/" + string(s.key)
}
