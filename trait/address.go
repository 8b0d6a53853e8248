package trait

import (
	"fmt"
	"math"

	"github.com/taro-engine/taro/errs"
	"github.com/taro-engine/taro/model"
)

// AddressKind discriminates the two ways spec §4.10 lets a request name a
// node: by external id (resolved through the ID Mapper) or by coordinate
// (resolved through the Spatial Runtime's nearest-neighbor lookup).
type AddressKind uint8

const (
	ByExternalID AddressKind = iota
	ByCoordinate
)

// Address is a request-supplied endpoint, tagged by which Resolver it needs
// (spec §4.10 step 1 "source_address, target_address[s]").
type Address struct {
	Kind       AddressKind
	ExternalID string
	X, Y       float64
}

// ExternalAddress constructs an Address resolved via the ID Mapper.
func ExternalAddress(id string) Address {
	return Address{Kind: ByExternalID, ExternalID: id}
}

// CoordinateAddress constructs an Address resolved via the Spatial Runtime.
func CoordinateAddress(x, y float64) Address {
	return Address{Kind: ByCoordinate, X: x, Y: y}
}

// Resolver is the addressing capability: {ID, Validate, Resolve} over a
// model Store (spec §9 "small capability set"). Facade callers memoize
// ByCoordinate resolutions; ByExternalID resolutions are already O(1) map
// lookups and need no cache.
type Resolver interface {
	ID() string
	Validate(store *model.Store) error
	Resolve(store *model.Store, addr Address) (nodeID uint32, err error)
}

// ExternalIDResolver resolves Address.ExternalID through the model's ID
// Mapper. Requires the model to carry an IdMapping table.
type ExternalIDResolver struct{}

func (ExternalIDResolver) ID() string { return "EXTERNAL_ID" }

func (ExternalIDResolver) Validate(store *model.Store) error {
	if store.IDs() == nil {
		return errs.NewCapabilityError("id_mapping")
	}
	return nil
}

func (ExternalIDResolver) Resolve(store *model.Store, addr Address) (uint32, error) {
	if addr.Kind != ByExternalID {
		return 0, ErrUnknownAddressKind
	}
	mapper := store.IDs()
	if mapper == nil {
		return 0, errs.NewCapabilityError("id_mapping")
	}
	return mapper.ToInternal(addr.ExternalID)
}

// CoordinateResolver resolves Address.X/Y through the model's KD-tree,
// rejecting a match farther than MaxSnapDistance (spec §4.10 step 1:
// "rejecting when distance exceeds max_snap_distance"). Requires the model
// to carry a spatial index.
type CoordinateResolver struct {
	MaxSnapDistance float64 // 0 disables the snap-distance check entirely
}

func (CoordinateResolver) ID() string { return "COORDINATE" }

func (CoordinateResolver) Validate(store *model.Store) error {
	if store.Spatial() == nil {
		return errs.NewCapabilityError("spatial_index")
	}
	return nil
}

func (r CoordinateResolver) Resolve(store *model.Store, addr Address) (uint32, error) {
	if addr.Kind != ByCoordinate {
		return 0, ErrUnknownAddressKind
	}
	tree := store.Spatial()
	if tree == nil {
		return 0, errs.NewCapabilityError("spatial_index")
	}
	node, distSq, err := tree.Nearest(addr.X, addr.Y)
	if err != nil {
		return 0, err
	}
	if r.MaxSnapDistance > 0 {
		if dist := math.Sqrt(distSq); dist > r.MaxSnapDistance {
			return 0, errs.NewInvalidInputError("max_snap_distance", fmt.Errorf("%w: %w", errs.ErrInvalidInput, ErrSnapDistanceExceeded))
		}
	}
	return node, nil
}

// ResolverFor returns the Resolver matching addr.Kind.
func ResolverFor(addr Address, maxSnapDistance float64) (Resolver, error) {
	switch addr.Kind {
	case ByExternalID:
		return ExternalIDResolver{}, nil
	case ByCoordinate:
		return CoordinateResolver{MaxSnapDistance: maxSnapDistance}, nil
	default:
		return nil, ErrUnknownAddressKind
	}
}
