package mapping

import (
	"sort"
	"sync"

	"github.com/neuronlabs/jsonapi-serializer/errors"
	"github.com/neuronlabs/jsonapi-serializer/log"
)

// Registry contains the serializer definitions mapped by their resource types.
// It is safe for concurrent use.
type Registry struct {
	serializers map[string]*Serializer
	lock        sync.RWMutex
}

// NewRegistry creates new serializer registry.
func NewRegistry() *Registry {
	return &Registry{serializers: make(map[string]*Serializer)}
}

// Register registers the serializers. Registering already registered resource type is an error.
func (r *Registry) Register(serializers ...*Serializer) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, s := range serializers {
		if s == nil {
			return errors.NewDet(ClassInvalidName, "registering nil serializer")
		}
		if _, ok := r.serializers[s.typ]; ok {
			return errors.NewDetf(ClassDuplicateSerializer, "serializer: '%s' already registered", s.typ)
		}
		r.serializers[s.typ] = s
		log.Debug2f("Registered serializer: '%s'", s.typ)
	}
	return nil
}

// MustRegister registers the serializers. Panics on error.
func (r *Registry) MustRegister(serializers ...*Serializer) {
	if err := r.Register(serializers...); err != nil {
		panic(err)
	}
}

// Serializer gets the serializer for the resource type 'typ'.
func (r *Registry) Serializer(typ string) (*Serializer, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	s, ok := r.serializers[typ]
	return s, ok
}

// GetSerializer gets the serializer for the resource type 'typ'. If not found ClassSerializerNotFound error
// is returned.
func (r *Registry) GetSerializer(typ string) (*Serializer, error) {
	s, ok := r.Serializer(typ)
	if !ok {
		return nil, errors.NewDetf(ClassSerializerNotFound, "serializer: '%s' is not registered", typ)
	}
	return s, nil
}

// Types gets the sorted list of registered resource types.
func (r *Registry) Types() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	types := make([]string, 0, len(r.serializers))
	for typ := range r.serializers {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}
