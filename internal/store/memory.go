package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps collections in memory, preserving insertion order. Data
// is lost on restart. Safe for concurrent use. Documents round-trip through
// bson so ids are ObjectIDs and values decode exactly as the Mongo backend's
// would, which lets tests substitute it for the real store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]bson.M)}
}

func (s *MemoryStore) Create(ctx context.Context, collection string, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", collection, err)
	}
	var stored bson.M
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return "", fmt.Errorf("unmarshal %s: %w", collection, err)
	}

	id, ok := stored["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		stored["_id"] = id
	}

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], stored)
	s.mu.Unlock()
	return id.Hex(), nil
}

func (s *MemoryStore) Find(ctx context.Context, collection string, filter Filter, results any) error {
	rv := reflect.ValueOf(results)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("find %s: results must be a pointer to a slice", collection)
	}

	s.mu.RLock()
	var matched []bson.M
	for _, doc := range s.collections[collection] {
		if filter.matches(doc) {
			matched = append(matched, doc)
		}
	}
	s.mu.RUnlock()

	slice := rv.Elem()
	slice.Set(reflect.MakeSlice(slice.Type(), 0, len(matched)))
	elemType := slice.Type().Elem()
	for _, doc := range matched {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", collection, err)
		}
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return fmt.Errorf("decode %s: %w", collection, err)
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	return nil
}

func (s *MemoryStore) Status(ctx context.Context) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Status{Connected: true, Database: "memory"}
	for name := range s.collections {
		if len(st.Collections) == 10 {
			break
		}
		st.Collections = append(st.Collections, name)
	}
	return st
}
