package facade

import (
	"hash/fnv"
	"math"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/taro-engine/taro/model"
	"github.com/taro-engine/taro/trait"
)

// coordKey is the canonical cache key for a memoized coordinate
// resolution: the exact bit pattern of the query coordinate plus the
// resolving strategy's id (spec §4.10 step 2 "keyed by the canonical
// coordinate bit pattern and strategy id").
type coordKey struct {
	xBits, yBits uint64
	resolverID   string
}

func (k coordKey) flightKey() string {
	return k.resolverID + ":" + strconv.FormatUint(k.xBits, 36) + ":" + strconv.FormatUint(k.yBits, 36)
}

// coordShard pairs one LRU segment with its own singleflight group, so a
// burst of identical in-flight lookups against the same shard collapses to
// one KD traversal (spec §5 "segmented LRU ... thread-safe with
// per-segment locking").
type coordShard struct {
	cache *lru.Cache[coordKey, uint32]
	group singleflight.Group
}

// coordCache is the facade's shared, thread-safe coordinate-resolution
// memoization layer (spec §4.10 step 2, §5 "the coordinate-resolution LRU
// is shared and must be thread-safe with per-segment locking").
type coordCache struct {
	shards []*coordShard
	mask   uint32
}

// newCoordCache builds a coordCache of shardCount segments, with shardCount
// rounded up to the next power of two so shard selection is a cheap mask
// rather than a modulo, and totalCapacity split evenly (ceiling) across them.
func newCoordCache(totalCapacity, shardCount int) *coordCache {
	if shardCount <= 0 {
		shardCount = 1
	}
	shardCount = int(nextPow2(uint32(shardCount)))
	perShard := (totalCapacity + shardCount - 1) / shardCount
	if perShard < 1 {
		perShard = 1
	}
	shards := make([]*coordShard, shardCount)
	for i := range shards {
		c, err := lru.New[coordKey, uint32](perShard)
		if err != nil {
			// perShard >= 1 always; lru.New only rejects size <= 0.
			panic(err)
		}
		shards[i] = &coordShard{cache: c}
	}
	return &coordCache{shards: shards, mask: uint32(shardCount - 1)}
}

func nextPow2(n uint32) uint32 {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	return n + 1
}

func (c *coordCache) shardFor(k coordKey) *coordShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(k.flightKey()))
	return c.shards[h.Sum32()&c.mask]
}

// resolve returns the cached node id for (resolver, addr) if present,
// otherwise resolves it through resolver.Resolve, with concurrent callers
// for the same key sharing one in-flight call, and caches the result.
func (c *coordCache) resolve(store *model.Store, resolver trait.Resolver, addr trait.Address) (uint32, error) {
	if math.IsNaN(addr.X) || math.IsInf(addr.X, 0) || math.IsNaN(addr.Y) || math.IsInf(addr.Y, 0) {
		return 0, trait.ErrNonFiniteCoordinate
	}
	key := coordKey{xBits: math.Float64bits(addr.X), yBits: math.Float64bits(addr.Y), resolverID: resolver.ID()}
	shard := c.shardFor(key)

	if node, ok := shard.cache.Get(key); ok {
		return node, nil
	}

	v, err, _ := shard.group.Do(key.flightKey(), func() (any, error) {
		if node, ok := shard.cache.Get(key); ok {
			return node, nil
		}
		node, rerr := resolver.Resolve(store, addr)
		if rerr != nil {
			return uint32(0), rerr
		}
		shard.cache.Add(key, node)
		return node, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(uint32), nil
}
