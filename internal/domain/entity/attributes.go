package entity

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// ChainAttributes holds the presentation metadata attached to a chain id.
type ChainAttributes struct {
	Color Color `json:"color"`
	// NativeCurrencyTokenAddress is a mainnet token used to price a native currency other than ETH.
	NativeCurrencyTokenAddress *common.Address `json:"nativeCurrencyTokenAddress,omitempty"`
	EtherscanEndpoint          string          `json:"etherscanEndpoint,omitempty"`
	EtherscanAPIKey            string          `json:"etherscanApiKey,omitempty"`
	Icon                       string          `json:"icon,omitempty"`
	GroupSelector              string          `json:"groupSelector,omitempty"`
}

// Clone returns a deep copy of the attributes.
func (a ChainAttributes) Clone() ChainAttributes {
	if a.NativeCurrencyTokenAddress != nil {
		addr := *a.NativeCurrencyTokenAddress
		a.NativeCurrencyTokenAddress = &addr
	}
	return a
}

// ChainWithAttributes is a chain descriptor merged with its attributes.
// Without an entry in the attribute table the attribute fields hold zero values
// and are left out of the JSON encoding.
type ChainWithAttributes struct {
	Chain
	ChainAttributes

	hasAttributes bool
}

// HasAttributes reports whether an attribute record was merged in.
func (c ChainWithAttributes) HasAttributes() bool {
	return c.hasAttributes
}

// MarshalJSON encodes the chain and attribute fields as one flat object.
func (c ChainWithAttributes) MarshalJSON() ([]byte, error) {
	chainJSON, err := json.Marshal(c.Chain)
	if err != nil {
		return nil, err
	}
	if !c.hasAttributes {
		return chainJSON, nil
	}

	attrsJSON, err := json.Marshal(c.ChainAttributes)
	if err != nil {
		return nil, err
	}

	// Both encodings are non-empty objects: splice "{chain..." + "," + "...attrs}".
	var buf bytes.Buffer
	buf.Grow(len(chainJSON) + len(attrsJSON))
	buf.Write(bytes.TrimSuffix(chainJSON, []byte("}")))
	buf.WriteByte(',')
	buf.Write(bytes.TrimPrefix(attrsJSON, []byte("{")))
	return buf.Bytes(), nil
}

// AttributeTable is an immutable mapping from chain id to attributes.
type AttributeTable struct {
	entries map[int64]ChainAttributes
}

// NewAttributeTable copies entries into a new table.
func NewAttributeTable(entries map[int64]ChainAttributes) AttributeTable {
	t := AttributeTable{entries: make(map[int64]ChainAttributes, len(entries))}
	for id, attrs := range entries {
		t.entries[id] = attrs.Clone()
	}
	return t
}

// Lookup returns a copy of the attributes for chainID.
func (t AttributeTable) Lookup(chainID int64) (ChainAttributes, bool) {
	attrs, ok := t.entries[chainID]
	if !ok {
		return ChainAttributes{}, false
	}
	return attrs.Clone(), true
}

// Merge shallow-merges the chain with its attribute record, if any.
func (t AttributeTable) Merge(chain Chain) ChainWithAttributes {
	merged := ChainWithAttributes{Chain: chain}
	if attrs, ok := t.Lookup(chain.ID); ok {
		merged.ChainAttributes = attrs
		merged.hasAttributes = true
	}
	return merged
}

// All returns a copy of every entry keyed by chain id.
func (t AttributeTable) All() map[int64]ChainAttributes {
	out := make(map[int64]ChainAttributes, len(t.entries))
	for id, attrs := range t.entries {
		out[id] = attrs.Clone()
	}
	return out
}

// ChainIDs returns the ids present in the table in ascending order.
func (t AttributeTable) ChainIDs() []int64 {
	ids := make([]int64, 0, len(t.entries))
	for id := range t.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of entries.
func (t AttributeTable) Len() int {
	return len(t.entries)
}
