package model

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/taro-engine/taro/timetick"
)

// Decode parses a self-describing binary model buffer (spec §6) into a Raw
// value. Decode performs no semantic validation beyond what is required to
// read the buffer's own length-prefixed tables; call Validate on the result
// before trusting it for serving (spec §4.3: "validated once").
//
// The wire format is a bespoke, fixed-width little-endian layout (spec §6);
// this decoder uses encoding/binary directly rather than a generic
// serialization framework, since the generated bindings for this format are
// explicitly out of scope for the serving runtime (spec §1).
func Decode(buf []byte) (*Raw, error) {
	r := &reader{br: bytes.NewReader(buf)}

	var raw Raw
	if err := decodeMetadata(r, &raw.Metadata); err != nil {
		return nil, err
	}
	if err := decodeTopology(r, &raw.Topology); err != nil {
		return nil, err
	}
	if err := decodeProfiles(r, &raw.Profiles); err != nil {
		return nil, err
	}
	if err := decodeTurnCosts(r, &raw.TurnCosts); err != nil {
		return nil, err
	}
	spatial, err := decodeSpatialIndex(r)
	if err != nil {
		return nil, err
	}
	raw.Spatial = spatial
	if err := decodeLandmarks(r, &raw.Landmarks); err != nil {
		return nil, err
	}
	ids, err := decodeIDMapping(r)
	if err != nil {
		return nil, err
	}
	raw.ExternalIDs = ids

	return &raw, nil
}

// reader wraps a *bytes.Reader with typed little-endian readers. Every
// method returns a wrapped io error on short buffers; Decode never panics on
// malformed input.
type reader struct {
	br *bytes.Reader
}

func (r *reader) u8() (uint8, error) {
	b, err := r.br.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("model: read u8: %w", err)
	}
	return b, nil
}

func (r *reader) bool() (bool, error) {
	b, err := r.u8()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (r *reader) u32() (uint32, error) {
	var v uint32
	if err := binary.Read(r.br, binary.LittleEndian, &v); err != nil {
		return 0, fmt.Errorf("model: read u32: %w", err)
	}
	return v, nil
}

func (r *reader) i32() (int32, error) {
	var v int32
	if err := binary.Read(r.br, binary.LittleEndian, &v); err != nil {
		return 0, fmt.Errorf("model: read i32: %w", err)
	}
	return v, nil
}

func (r *reader) u64() (uint64, error) {
	var v uint64
	if err := binary.Read(r.br, binary.LittleEndian, &v); err != nil {
		return 0, fmt.Errorf("model: read u64: %w", err)
	}
	return v, nil
}

func (r *reader) f32() (float32, error) {
	bits, err := r.u32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

func (r *reader) f64() (float64, error) {
	bits, err := r.u64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// str reads a u32 byte-length prefix followed by that many UTF-8 bytes.
func (r *reader) str() (string, error) {
	n, err := r.u32()
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.br, buf); err != nil {
		return "", fmt.Errorf("model: read string(%d bytes): %w", n, err)
	}
	return string(buf), nil
}

func decodeMetadata(r *reader, m *Metadata) error {
	schemaVersion, err := r.u64()
	if err != nil {
		return err
	}
	modelVersion, err := r.str()
	if err != nil {
		return err
	}
	timeUnit, err := r.u8()
	if err != nil {
		return err
	}
	tickDurationNS, err := r.u64()
	if err != nil {
		return err
	}
	profileTimezone, err := r.str()
	if err != nil {
		return err
	}
	*m = Metadata{
		SchemaVersion:   schemaVersion,
		ModelVersion:    modelVersion,
		TimeUnit:        timeUnitFromWire(timeUnit),
		TickDurationNS:  int64(tickDurationNS),
		ProfileTimezone: profileTimezone,
	}
	return nil
}

func decodeTopology(r *reader, t *Topology) error {
	nodeCount, err := r.u32()
	if err != nil {
		return err
	}
	edgeCount, err := r.u32()
	if err != nil {
		return err
	}
	firstEdge, err := readU32Slice(r, int(nodeCount)+1)
	if err != nil {
		return err
	}
	edgeTarget, err := readU32Slice(r, int(edgeCount))
	if err != nil {
		return err
	}
	edgeOrigin, err := readU32Slice(r, int(edgeCount))
	if err != nil {
		return err
	}
	baseWeight, err := readF32Slice(r, int(edgeCount))
	if err != nil {
		return err
	}
	edgeProfileID, err := readU32Slice(r, int(edgeCount))
	if err != nil {
		return err
	}
	coordX := make([]float64, nodeCount)
	coordY := make([]float64, nodeCount)
	for i := range coordX {
		x, err := r.f64()
		if err != nil {
			return err
		}
		y, err := r.f64()
		if err != nil {
			return err
		}
		coordX[i], coordY[i] = x, y
	}
	*t = Topology{
		NodeCount:     nodeCount,
		EdgeCount:     edgeCount,
		FirstEdge:     firstEdge,
		EdgeTarget:    edgeTarget,
		EdgeOrigin:    edgeOrigin,
		BaseWeight:    baseWeight,
		EdgeProfileID: edgeProfileID,
		CoordX:        coordX,
		CoordY:        coordY,
	}
	return nil
}

func decodeProfiles(r *reader, out *[]TemporalProfile) error {
	count, err := r.u32()
	if err != nil {
		return err
	}
	profiles := make([]TemporalProfile, count)
	for i := range profiles {
		profileID, err := r.u32()
		if err != nil {
			return err
		}
		dayMask, err := r.u32()
		if err != nil {
			return err
		}
		bucketCount, err := r.u32()
		if err != nil {
			return err
		}
		buckets, err := readF32Slice(r, int(bucketCount))
		if err != nil {
			return err
		}
		multiplier, err := r.f32()
		if err != nil {
			return err
		}
		profiles[i] = TemporalProfile{ProfileID: profileID, DayMask: dayMask, Buckets: buckets, Multiplier: multiplier}
	}
	*out = profiles
	return nil
}

func decodeTurnCosts(r *reader, out *[]TurnCost) error {
	count, err := r.u32()
	if err != nil {
		return err
	}
	turns := make([]TurnCost, count)
	for i := range turns {
		fromEdge, err := r.u32()
		if err != nil {
			return err
		}
		toEdge, err := r.u32()
		if err != nil {
			return err
		}
		penalty, err := r.f32()
		if err != nil {
			return err
		}
		turns[i] = TurnCost{FromEdge: fromEdge, ToEdge: toEdge, PenaltySeconds: penalty}
	}
	*out = turns
	return nil
}

func decodeSpatialIndex(r *reader) (*SpatialIndex, error) {
	present, err := r.bool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	nodeCount, err := r.u32()
	if err != nil {
		return nil, err
	}
	nodes := make([]KDNode, nodeCount)
	for i := range nodes {
		splitValue, err := r.f64()
		if err != nil {
			return nil, err
		}
		left, err := r.i32()
		if err != nil {
			return nil, err
		}
		right, err := r.i32()
		if err != nil {
			return nil, err
		}
		itemStart, err := r.u32()
		if err != nil {
			return nil, err
		}
		itemCount, err := r.u32()
		if err != nil {
			return nil, err
		}
		splitAxis, err := r.u8()
		if err != nil {
			return nil, err
		}
		isLeaf, err := r.bool()
		if err != nil {
			return nil, err
		}
		nodes[i] = KDNode{
			SplitValue: splitValue, Left: left, Right: right,
			ItemStart: itemStart, ItemCount: itemCount,
			SplitAxis: splitAxis, IsLeaf: isLeaf,
		}
	}
	leafItemCount, err := r.u32()
	if err != nil {
		return nil, err
	}
	leafItems, err := readU32Slice(r, int(leafItemCount))
	if err != nil {
		return nil, err
	}
	rootIndex, err := r.u32()
	if err != nil {
		return nil, err
	}
	return &SpatialIndex{Nodes: nodes, LeafItems: leafItems, RootIndex: rootIndex}, nil
}

func decodeLandmarks(r *reader, out *[]Landmark) error {
	count, err := r.u32()
	if err != nil {
		return err
	}
	landmarks := make([]Landmark, count)
	for i := range landmarks {
		nodeIdx, err := r.u32()
		if err != nil {
			return err
		}
		n, err := r.u32()
		if err != nil {
			return err
		}
		forward, err := readF32Slice(r, int(n))
		if err != nil {
			return err
		}
		backward, err := readF32Slice(r, int(n))
		if err != nil {
			return err
		}
		landmarks[i] = Landmark{NodeIdx: nodeIdx, Forward: forward, Backward: backward}
	}
	*out = landmarks
	return nil
}

func decodeIDMapping(r *reader) ([]uint64, error) {
	present, err := r.bool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	count, err := r.u32()
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, count)
	for i := range ids {
		v, err := r.u64()
		if err != nil {
			return nil, err
		}
		ids[i] = v
	}
	return ids, nil
}

func readU32Slice(r *reader, n int) ([]uint32, error) {
	out := make([]uint32, n)
	for i := range out {
		v, err := r.u32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func readF32Slice(r *reader, n int) ([]float32, error) {
	out := make([]float32, n)
	for i := range out {
		v, err := r.f32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func timeUnitFromWire(v uint8) timetick.TimeUnit {
	return timetick.TimeUnit(v)
}
