package kclvalue

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// wireGeoMeta is GeoMeta's on-wire shape, nested under "__geoMeta".
type wireGeoMeta struct {
	ID          uuid.UUID `json:"id"`
	SourceRange struct {
		Start int `json:"start"`
		End   int `json:"end"`
	} `json:"sourceRange"`
}

func (g GeoMeta) toWire() wireGeoMeta {
	w := wireGeoMeta{ID: g.ID}
	w.SourceRange.Start = g.SourceRange.Start
	w.SourceRange.End = g.SourceRange.End
	return w
}

type wireBasePath struct {
	From    Point2D     `json:"from"`
	To      Point2D     `json:"to"`
	Name    string      `json:"name"`
	GeoMeta wireGeoMeta `json:"__geoMeta"`
}

func (p BasePath) toWire() wireBasePath {
	return wireBasePath{From: p.From, To: p.To, Name: p.Name, GeoMeta: p.GeoMeta.toWire()}
}

// MarshalJSON renders a Path with the "type" discriminator camelCased
// per spec.md §6.3.
func (p Path) MarshalJSON() ([]byte, error) {
	base := p.Base.toWire()

	switch p.Kind {
	case PathToPoint:
		return json.Marshal(struct {
			Type string `json:"type"`
			wireBasePath
		}{"toPoint", base})
	case PathHorizontal:
		return json.Marshal(struct {
			Type string `json:"type"`
			wireBasePath
			X float64 `json:"x"`
		}{"horizontal", base, p.X})
	case PathAngledLineTo:
		return json.Marshal(struct {
			Type string `json:"type"`
			wireBasePath
			AngleX *float64 `json:"x,omitempty"`
			AngleY *float64 `json:"y,omitempty"`
		}{"angledLineTo", base, p.AngleX, p.AngleY})
	case PathTangentialArc:
		return json.Marshal(struct {
			Type string `json:"type"`
			wireBasePath
		}{"tangentialArc", base})
	case PathTangentialArcTo:
		return json.Marshal(struct {
			Type string `json:"type"`
			wireBasePath
			Center Point2D `json:"center"`
			CCW    bool    `json:"ccw"`
		}{"tangentialArcTo", base, p.Center, p.CCW})
	case PathBase:
		return json.Marshal(struct {
			Type string `json:"type"`
			wireBasePath
		}{"base", base})
	default:
		return nil, fmt.Errorf("kclvalue: unknown path kind %d", p.Kind)
	}
}

// wireMemoryItem is the camelCase, "__meta"-bearing wire shape for one
// MemoryItem variant's common envelope.
type wireMemoryItem struct {
	Type string        `json:"type"`
	Meta []Metadata    `json:"__meta"`
	Data json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON renders a MemoryItem per spec.md §6.3: a "type"
// discriminator, camelCase field names, user-value scalars verbatim,
// metadata under "__meta".
func (m MemoryItem) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case KindUserVal:
		raw, err := json.Marshal(m.UserVal)
		if err != nil {
			return nil, err
		}
		return json.Marshal(wireMemoryItem{Type: "userVal", Meta: m.Meta, Data: raw})
	case KindSketchGroup:
		raw, err := json.Marshal(m.SketchGroup)
		if err != nil {
			return nil, err
		}
		return json.Marshal(wireMemoryItem{Type: "sketchGroup", Meta: m.Meta, Data: raw})
	case KindExtrudeGroup:
		raw, err := json.Marshal(m.ExtrudeGroup)
		if err != nil {
			return nil, err
		}
		return json.Marshal(wireMemoryItem{Type: "extrudeGroup", Meta: m.Meta, Data: raw})
	case KindExtrudeTransform:
		raw, err := json.Marshal(m.ExtrudeTransform)
		if err != nil {
			return nil, err
		}
		return json.Marshal(wireMemoryItem{Type: "extrudeTransform", Meta: m.Meta, Data: raw})
	case KindFunction:
		raw, err := json.Marshal(m.Function.Expression)
		if err != nil {
			return nil, err
		}
		return json.Marshal(wireMemoryItem{Type: "function", Meta: m.Meta, Data: raw})
	default:
		return nil, fmt.Errorf("kclvalue: unknown memory item kind %d", m.Kind)
	}
}

// UnmarshalJSON restores a MemoryItem from its wire shape. A restored
// Function has no Native and a nil Expression body re-parse isn't
// attempted here (the expression is opaque JSON); calling it fails
// Semantic("Not a function") per spec.md §9 unless the host rebinds
// it by name.
func (m *MemoryItem) UnmarshalJSON(data []byte) error {
	var w wireMemoryItem
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	m.Meta = w.Meta

	switch w.Type {
	case "userVal":
		var v interface{}
		if len(w.Data) > 0 {
			if err := json.Unmarshal(w.Data, &v); err != nil {
				return err
			}
		}
		m.Kind = KindUserVal
		m.UserVal = v
	case "sketchGroup":
		var sg SketchGroup
		if err := json.Unmarshal(w.Data, &sg); err != nil {
			return err
		}
		m.Kind = KindSketchGroup
		m.SketchGroup = &sg
	case "extrudeGroup":
		var eg ExtrudeGroup
		if err := json.Unmarshal(w.Data, &eg); err != nil {
			return err
		}
		m.Kind = KindExtrudeGroup
		m.ExtrudeGroup = &eg
	case "extrudeTransform":
		var t ExtrudeTransform
		if err := json.Unmarshal(w.Data, &t); err != nil {
			return err
		}
		m.Kind = KindExtrudeTransform
		m.ExtrudeTransform = &t
	case "function":
		m.Kind = KindFunction
		m.Function = &Function{Native: nil, Expression: nil, Meta: w.Meta}
	default:
		return fmt.Errorf("kclvalue: unknown memory item type %q", w.Type)
	}
	return nil
}

// MarshalJSON renders a PlaneKind as its canonical string.
func (k PlaneKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON accepts the canonical plane-kind strings
// case-insensitively (spec.md §6.3).
func (k *PlaneKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePlaneKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
