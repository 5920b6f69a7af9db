// Package network maps EVM chain ids to the network names shown in search results.
package network

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed networks.yaml
var defaultNetworksYAML []byte

// Definition describes a supported network.
type Definition struct {
	ChainID int64  `yaml:"chain_id"`
	Name    string `yaml:"name"`
}

type file struct {
	Networks []Definition `yaml:"networks"`
}

// Table resolves chain ids to network names. It is read-only after construction.
type Table struct {
	names map[int64]string
}

// New builds a table from the embedded defaults plus overrides.
// An override with an empty name removes the network.
func New(overrides map[int64]string) (*Table, error) {
	defs, err := parse(defaultNetworksYAML)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(defs)+len(overrides))
	for _, d := range defs {
		names[d.ChainID] = d.Name
	}
	for id, name := range overrides {
		if name == "" {
			delete(names, id)
			continue
		}
		names[id] = name
	}

	return &Table{names: names}, nil
}

// MustDefault returns the table built from the embedded defaults only.
func MustDefault() *Table {
	t, err := New(nil)
	if err != nil {
		panic(err)
	}
	return t
}

func parse(data []byte) ([]Definition, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse network table: %w", err)
	}
	for _, d := range f.Networks {
		if d.ChainID <= 0 || d.Name == "" {
			return nil, fmt.Errorf("invalid network definition: chain_id=%d name=%q", d.ChainID, d.Name)
		}
	}
	return f.Networks, nil
}

// Name returns the network name for a chain id.
func (t *Table) Name(chainID int64) (string, bool) {
	name, ok := t.names[chainID]
	return name, ok
}

// Supported reports whether the chain id is known.
func (t *Table) Supported(chainID int64) bool {
	_, ok := t.names[chainID]
	return ok
}

// Definitions returns all known networks ordered by chain id.
func (t *Table) Definitions() []Definition {
	defs := make([]Definition, 0, len(t.names))
	for id, name := range t.names {
		defs = append(defs, Definition{ChainID: id, Name: name})
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ChainID < defs[j].ChainID })
	return defs
}
