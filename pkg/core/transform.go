package core

import "gonum.org/v1/gonum/spatial/r3"

// Transform is a rigid transform: a 3x3 rotation followed by a translation.
// It stands in for the affine part of a 4x4 homogeneous matrix.
type Transform struct {
	Rotation    *r3.Mat
	Translation Vec3
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{Rotation: r3.Eye()}
}

// NewTransform creates a transform from row-major rotation entries and a translation
func NewTransform(rotation [9]float64, translation Vec3) Transform {
	return Transform{Rotation: r3.NewMat(rotation[:]), Translation: translation}
}

// Apply transforms a point: R*p + t
func (t Transform) Apply(p Vec3) Vec3 {
	return r3.Add(t.rotation().MulVec(p), t.Translation)
}

// ApplyDirection rotates a direction without translating it
func (t Transform) ApplyDirection(d Vec3) Vec3 {
	return t.rotation().MulVec(d)
}

// ApplyDirectionTransposed rotates a direction by the transposed rotation
func (t Transform) ApplyDirectionTransposed(d Vec3) Vec3 {
	return t.rotation().MulVecTrans(d)
}

// rotation treats a zero-value Transform as identity
func (t Transform) rotation() *r3.Mat {
	if t.Rotation == nil {
		return r3.Eye()
	}
	return t.Rotation
}
