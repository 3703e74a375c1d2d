package profile

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hengadev/errsx"
)

// Registry routes payloads to characteristic profiles by UUID. It is safe for
// concurrent use.
type Registry struct {
	mu              sync.RWMutex
	services        map[string]ServiceProfile
	characteristics map[string]CharacteristicProfile
	owners          map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		services:        make(map[string]ServiceProfile),
		characteristics: make(map[string]CharacteristicProfile),
		owners:          make(map[string]string),
	}
}

// AddService validates s and registers it with its characteristics. All
// problems are reported together in an errsx.Map; nothing is registered
// unless the whole service is valid.
func (r *Registry) AddService(s ServiceProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	errs := errsx.Map{}
	if s.Name == "" {
		errs.Set("service.name", fmt.Errorf("%w: service name is required", ErrInvalidProfile))
	}
	serviceUUID, err := NormalizeUUID(s.UUID)
	if err != nil {
		errs.Set("service.uuid", err)
	} else if existing, ok := r.services[serviceUUID]; ok {
		errs.Set("service.uuid", NewDuplicateUUIDError(serviceUUID, existing.Name))
	}

	seen := make(map[string]string, len(s.Characteristics))
	for i, c := range s.Characteristics {
		key := fmt.Sprintf("characteristic[%d]", i)
		if c == nil {
			errs.Set(key, fmt.Errorf("%w: nil characteristic", ErrInvalidProfile))
			continue
		}
		uuid, err := NormalizeUUID(c.UUID())
		if err != nil {
			errs.Set(key+".uuid", err)
			continue
		}
		if owner, ok := r.owners[uuid]; ok {
			errs.Set(key+".uuid", NewDuplicateUUIDError(uuid, owner))
			continue
		}
		if name, ok := seen[uuid]; ok {
			errs.Set(key+".uuid", NewDuplicateUUIDError(uuid, name))
			continue
		}
		seen[uuid] = c.Name()
	}

	if !errs.IsEmpty() {
		return errs.AsError()
	}

	s.UUID = serviceUUID
	s.Characteristics = append([]CharacteristicProfile(nil), s.Characteristics...)
	r.services[serviceUUID] = s
	for _, c := range s.Characteristics {
		uuid, _ := NormalizeUUID(c.UUID())
		r.characteristics[uuid] = c
		r.owners[uuid] = s.Name
	}
	return nil
}

// Service returns the service registered under uuid.
func (r *Registry) Service(uuid string) (ServiceProfile, error) {
	key, err := NormalizeUUID(uuid)
	if err != nil {
		return ServiceProfile{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.services[key]
	if !ok {
		return ServiceProfile{}, NewUnknownServiceError(key)
	}
	return s, nil
}

// Characteristic returns the characteristic registered under uuid.
func (r *Registry) Characteristic(uuid string) (CharacteristicProfile, error) {
	key, err := NormalizeUUID(uuid)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.characteristics[key]
	if !ok {
		return nil, NewUnknownCharacteristicError(key)
	}
	return c, nil
}

// Services returns every registered service sorted by name.
func (r *Registry) Services() []ServiceProfile {
	r.mu.RLock()
	out := make([]ServiceProfile, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].UUID < out[j].UUID
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Decode converts a payload of the characteristic registered under uuid into
// its string values.
func (r *Registry) Decode(uuid string, b []byte) (map[string]string, error) {
	c, err := r.Characteristic(uuid)
	if err != nil {
		return nil, err
	}
	return c.Decode(b)
}

// Encode builds a payload for the characteristic registered under uuid.
func (r *Registry) Encode(uuid string, values map[string]string) ([]byte, error) {
	c, err := r.Characteristic(uuid)
	if err != nil {
		return nil, err
	}
	return c.Encode(values)
}
