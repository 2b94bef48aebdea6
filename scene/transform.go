package scene

import "github.com/bloeys/gglm/gglm"

// ComposeTransform builds a model matrix from scale, per-axis rotations in
// degrees and a translation, composed as:
//
//	Translation * RotX * RotY * RotZ * Scale
//
// Pure; pushing the result to the shader is the dispatcher's job.
func ComposeTransform(scale gglm.Vec3, rotXDeg, rotYDeg, rotZDeg float32, pos gglm.Vec3) gglm.TrMat {

	m := gglm.NewTrMatId()

	m.TranslateVec(&pos)
	m.Rotate(rotXDeg*gglm.Deg2Rad, 1, 0, 0)
	m.Rotate(rotYDeg*gglm.Deg2Rad, 0, 1, 0)
	m.Rotate(rotZDeg*gglm.Deg2Rad, 0, 0, 1)

	// TrMat.Scale only touches the diagonal, which is wrong once the
	// rotations are in the matrix. Right-multiply a full scale matrix.
	scaleMat := gglm.NewScaleMat(scale.X(), scale.Y(), scale.Z())
	m.Mul(&scaleMat)

	return m
}
