package format

import "github.com/promptpack/promptpack/internal/model"

// Level describes how well a format can represent a section kind.
type Level string

const (
	// Full means the kind renders with the format's native structure.
	Full Level = "full"

	// Degraded means the kind renders through a lossy transform.
	Degraded Level = "degraded"

	// Unsupported means the kind is omitted from the output entirely.
	Unsupported Level = "unsupported"
)

// Transform identifies the degradation applied to a section kind.
type Transform string

const (
	// TransformNone is used for full and unsupported capabilities.
	TransformNone Transform = ""

	// TransformPersonaProse flattens a persona into a prose block.
	TransformPersonaProse Transform = "persona-to-prose"

	// TransformToolsList renders tool identifiers as a markdown list.
	TransformToolsList Transform = "tools-to-list"
)

// Capability pairs a support level with its transform, if any.
type Capability struct {
	Level     Level
	Transform Transform
}

// full, degraded and unsupported are shorthands for capability tables.
func full() Capability { return Capability{Level: Full} }

func degraded(t Transform) Capability { return Capability{Level: Degraded, Transform: t} }

func unsupported() Capability { return Capability{Level: Unsupported} }

// Matrix maps every section kind to a capability.
type Matrix map[model.SectionKind]Capability

// fullMatrix returns a matrix supporting every kind natively.
func fullMatrix() Matrix {
	m := make(Matrix, len(model.AllSectionKinds()))
	for _, k := range model.AllSectionKinds() {
		m[k] = full()
	}
	return m
}

// withOverrides copies the matrix and replaces the given entries.
func (m Matrix) withOverrides(overrides Matrix) Matrix {
	out := make(Matrix, len(m))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
