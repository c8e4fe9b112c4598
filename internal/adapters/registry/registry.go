// Package registry implements the externally-owned entity registry the
// logistics core queries for provider and receiver candidates. Providers are
// indexed by resource type so a sourcing search is a targeted lookup rather
// than a scan over every entity in the world.
package registry

import (
	"github.com/lucasmendis/supplyline/internal/domain/logistics"
	"github.com/lucasmendis/supplyline/internal/domain/shared"
)

// EntityRegistry tracks the live entity population and its capabilities.
// Iteration order is registration order, which defines the tie-break order
// the resolver relies on. Single-writer, matching the cooperative step model.
type EntityRegistry struct {
	providers         []logistics.ProviderCapability
	receivers         []logistics.ReceiverCapability
	producersByOutput map[logistics.Resource][]logistics.ProviderCapability
	providersByID     map[string]logistics.ProviderCapability
	receiversByID     map[string]logistics.ReceiverCapability
}

// Compile-time interface check
var _ logistics.CandidateRegistry = (*EntityRegistry)(nil)

// NewEntityRegistry creates an empty registry
func NewEntityRegistry() *EntityRegistry {
	return &EntityRegistry{
		producersByOutput: make(map[logistics.Resource][]logistics.ProviderCapability),
		providersByID:     make(map[string]logistics.ProviderCapability),
		receiversByID:     make(map[string]logistics.ReceiverCapability),
	}
}

// Register adds a facility's capabilities to the registry
func (r *EntityRegistry) Register(facility *logistics.Facility) {
	if facility.IsProvider() {
		r.providers = append(r.providers, facility)
		r.providersByID[facility.ID().String()] = facility
		if facility.ProviderKind() == logistics.ProviderProducer {
			if output, ok := facility.ProducedResource(); ok {
				r.producersByOutput[output] = append(r.producersByOutput[output], facility)
			}
		}
	}
	if facility.IsReceiver() {
		r.receivers = append(r.receivers, facility)
		r.receiversByID[facility.ID().String()] = facility
	}
}

// Deregister removes a destroyed entity. Routes referencing it resolve to
// absent on their next lookup.
func (r *EntityRegistry) Deregister(id shared.EntityID) {
	key := id.String()

	if provider, ok := r.providersByID[key]; ok {
		delete(r.providersByID, key)
		r.providers = removeProvider(r.providers, id)
		if provider.ProviderKind() == logistics.ProviderProducer {
			for output, producers := range r.producersByOutput {
				r.producersByOutput[output] = removeProvider(producers, id)
			}
		}
	}

	if _, ok := r.receiversByID[key]; ok {
		delete(r.receiversByID, key)
		for i, receiver := range r.receivers {
			if receiver.ID().Equals(id) {
				r.receivers = append(r.receivers[:i], r.receivers[i+1:]...)
				break
			}
		}
	}
}

// Providers implements logistics.CandidateRegistry
func (r *EntityRegistry) Providers() []logistics.ProviderCapability {
	return r.providers
}

// ProvidersOf implements logistics.CandidateRegistry: producers of the exact
// resource first, then the type-agnostic stockpiles, each in registration
// order
func (r *EntityRegistry) ProvidersOf(resource logistics.Resource) []logistics.ProviderCapability {
	matches := append([]logistics.ProviderCapability(nil), r.producersByOutput[resource]...)
	for _, provider := range r.providers {
		if provider.ProviderKind() == logistics.ProviderStockpile {
			matches = append(matches, provider)
		}
	}
	return matches
}

// Receivers implements logistics.CandidateRegistry
func (r *EntityRegistry) Receivers() []logistics.ReceiverCapability {
	return r.receivers
}

// ProviderByID implements logistics.CandidateRegistry
func (r *EntityRegistry) ProviderByID(id shared.EntityID) (logistics.ProviderCapability, bool) {
	provider, ok := r.providersByID[id.String()]
	return provider, ok
}

// ReceiverByID implements logistics.CandidateRegistry
func (r *EntityRegistry) ReceiverByID(id shared.EntityID) (logistics.ReceiverCapability, bool) {
	receiver, ok := r.receiversByID[id.String()]
	return receiver, ok
}

func removeProvider(providers []logistics.ProviderCapability, id shared.EntityID) []logistics.ProviderCapability {
	for i, provider := range providers {
		if provider.ID().Equals(id) {
			return append(providers[:i], providers[i+1:]...)
		}
	}
	return providers
}
