package canvasray

import "fmt"

// Layer is an integer classification assignable to UI elements, distinct
// from string tags. Valid layers are 0 through MaxLayers-1.
type Layer int

// NoLayer is returned by NameToLayer for names that are not in the table.
// No element can be on NoLayer, so matching against it never succeeds.
const NoLayer Layer = -1

// MaxLayers is the number of layer slots in a LayerTable.
const MaxLayers = 32

// Built-in layers, present in every new LayerTable.
const (
	LayerDefault       Layer = 0
	LayerTransparentFX Layer = 1
	LayerIgnoreRaycast Layer = 2
	LayerWater         Layer = 4
	LayerUI            Layer = 5
)

// Valid reports whether l is within [0, MaxLayers).
func (l Layer) Valid() bool {
	return l >= 0 && l < MaxLayers
}

// LayerMask is a bitmask of layers. Bit n selects Layer n.
type LayerMask uint32

// MaskAll selects every layer.
const MaskAll LayerMask = 0xFFFFFFFF

// MaskOf returns a mask selecting the given layers. Invalid layers are ignored.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l.Valid() {
			m |= 1 << uint(l)
		}
	}
	return m
}

// Has reports whether the mask selects l.
func (m LayerMask) Has(l Layer) bool {
	if !l.Valid() {
		return false
	}
	return m&(1<<uint(l)) != 0
}

// LayerResolver resolves layer names to layer ids.
type LayerResolver interface {
	NameToLayer(name string) Layer
}

// LayerTable maps layer names to ids. The zero value is empty; use
// NewLayerTable to get one with the built-in layers.
type LayerTable struct {
	names [MaxLayers]string
}

// DefaultLayers is the table used when a HitTester is built without one.
var DefaultLayers = NewLayerTable()

// NewLayerTable creates a table holding the built-in layers.
func NewLayerTable() *LayerTable {
	t := &LayerTable{}
	t.names[LayerDefault] = "Default"
	t.names[LayerTransparentFX] = "TransparentFX"
	t.names[LayerIgnoreRaycast] = "Ignore Raycast"
	t.names[LayerWater] = "Water"
	t.names[LayerUI] = "UI"
	return t
}

// NameToLayer returns the layer named name, or NoLayer if there is none.
// Lookup is case-sensitive.
func (t *LayerTable) NameToLayer(name string) Layer {
	if name == "" {
		return NoLayer
	}
	for i, n := range t.names {
		if n == name {
			return Layer(i)
		}
	}
	return NoLayer
}

// LayerToName returns the name of layer l, or "" if it is unnamed or invalid.
func (t *LayerTable) LayerToName(l Layer) string {
	if !l.Valid() {
		return ""
	}
	return t.names[l]
}

// SetLayerName names layer l. An empty name clears the slot.
// A name already used by another layer is rejected.
func (t *LayerTable) SetLayerName(l Layer, name string) error {
	if !l.Valid() {
		return fmt.Errorf("canvasray: layer %d out of range [0, %d)", l, MaxLayers)
	}
	if name != "" {
		if other := t.NameToLayer(name); other != NoLayer && other != l {
			return fmt.Errorf("canvasray: layer name %q already used by layer %d", name, other)
		}
	}
	t.names[l] = name
	return nil
}

// Mask returns a mask selecting the named layers. Unknown names are ignored.
func (t *LayerTable) Mask(names ...string) LayerMask {
	var m LayerMask
	for _, n := range names {
		m |= MaskOf(t.NameToLayer(n))
	}
	return m
}
