// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/cachet/internal/core/domain"

// Codec translates between the persisted cache text and the in-memory model.
//
//go:generate mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type Codec interface {
	// Parse hydrates a model from raw cache text. It fails only on
	// structurally malformed entry lines; unknown type tags are preserved
	// as internal entries.
	Parse(raw []byte) (*domain.Model, error)

	// Serialize emits the model in its stored insertion order. Input that was
	// parsed and not edited round-trips byte for byte.
	Serialize(model *domain.Model) []byte
}
