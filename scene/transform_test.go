package scene

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
)

const matDelta = 1e-5

func TestComposeTransformIdentity(t *testing.T) {

	m := ComposeTransform(gglm.NewVec3(1, 1, 1), 0, 0, 0, gglm.NewVec3(0, 0, 0))

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {

			want := float32(0)
			if col == row {
				want = 1
			}
			assert.InDelta(t, want, m.Mat4.Data[col][row], matDelta, "col %d row %d", col, row)
		}
	}
}

func TestComposeTransformScaleAndTranslate(t *testing.T) {

	m := ComposeTransform(gglm.NewVec3(2, 3, 4), 0, 0, 0, gglm.NewVec3(5, 6, 7))

	assert.InDelta(t, 2, m.Mat4.Data[0][0], matDelta)
	assert.InDelta(t, 3, m.Mat4.Data[1][1], matDelta)
	assert.InDelta(t, 4, m.Mat4.Data[2][2], matDelta)

	assert.InDelta(t, 5, m.Mat4.Data[3][0], matDelta)
	assert.InDelta(t, 6, m.Mat4.Data[3][1], matDelta)
	assert.InDelta(t, 7, m.Mat4.Data[3][2], matDelta)
	assert.InDelta(t, 1, m.Mat4.Data[3][3], matDelta)
}

func TestComposeTransformRotationIsDegrees(t *testing.T) {

	// 90 degrees about X maps +Y onto +Z
	m := ComposeTransform(gglm.NewVec3(1, 1, 1), 90, 0, 0, gglm.NewVec3(0, 0, 0))

	assert.InDelta(t, 0, m.Mat4.Data[1][1], matDelta)
	assert.InDelta(t, 1, m.Mat4.Data[1][2], matDelta)
	assert.InDelta(t, -1, m.Mat4.Data[2][1], matDelta)
	assert.InDelta(t, 0, m.Mat4.Data[2][2], matDelta)
}

func TestComposeTransformRotationOrderIsXYZ(t *testing.T) {

	// With RotX * RotY the +X axis first goes to -Z (RotY 90), then -Z goes
	// to +Y (RotX 90). The reversed order would land it on -Z instead.
	m := ComposeTransform(gglm.NewVec3(1, 1, 1), 90, 90, 0, gglm.NewVec3(0, 0, 0))

	assert.InDelta(t, 0, m.Mat4.Data[0][0], matDelta)
	assert.InDelta(t, 1, m.Mat4.Data[0][1], matDelta)
	assert.InDelta(t, 0, m.Mat4.Data[0][2], matDelta)
}

func TestComposeTransformNonUniformScaleWithRotation(t *testing.T) {

	// RotY 90 maps +X onto -Z and +Z onto +X, so the x scale must follow
	// the rotated first column into the z row and the z scale into the x
	// row. Scaling only the diagonal would leave both off-diagonal entries
	// unscaled.
	m := ComposeTransform(gglm.NewVec3(2, 3, 4), 0, 90, 0, gglm.NewVec3(1, 2, 3))

	want := [4][4]float32{
		{0, 0, -2, 0},
		{0, 3, 0, 0},
		{4, 0, 0, 0},
		{1, 2, 3, 1},
	}

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			assert.InDelta(t, want[col][row], m.Mat4.Data[col][row], matDelta, "col %d row %d", col, row)
		}
	}
}

func TestComposeTransformNonUniformScaleWithRotationX(t *testing.T) {

	// RotX 90 maps +Y onto +Z and +Z onto -Y
	m := ComposeTransform(gglm.NewVec3(2, 3, 4), 90, 0, 0, gglm.NewVec3(0, 0, 0))

	assert.InDelta(t, 2, m.Mat4.Data[0][0], matDelta)
	assert.InDelta(t, 3, m.Mat4.Data[1][2], matDelta)
	assert.InDelta(t, -4, m.Mat4.Data[2][1], matDelta)
	assert.InDelta(t, 0, m.Mat4.Data[1][1], matDelta)
	assert.InDelta(t, 0, m.Mat4.Data[2][2], matDelta)
}

func TestComposeTransformTranslationUnaffectedByRotationAndScale(t *testing.T) {

	// Translation is applied first in Translation * RotX * RotY * RotZ *
	// Scale, so the last column is the position verbatim.
	m := ComposeTransform(gglm.NewVec3(2, 2, 2), 0, 90, 0, gglm.NewVec3(5, -1, 3))

	assert.InDelta(t, 5, m.Mat4.Data[3][0], matDelta)
	assert.InDelta(t, -1, m.Mat4.Data[3][1], matDelta)
	assert.InDelta(t, 3, m.Mat4.Data[3][2], matDelta)
}

func TestComposeTransformIsPure(t *testing.T) {

	scale := gglm.NewVec3(2, 3, 4)
	pos := gglm.NewVec3(5, 6, 7)

	a := ComposeTransform(scale, 10, 20, 30, pos)
	b := ComposeTransform(scale, 10, 20, 30, pos)

	assert.Equal(t, a.Mat4.Data, b.Mat4.Data)
	assert.Equal(t, gglm.NewVec3(2, 3, 4), scale)
	assert.Equal(t, gglm.NewVec3(5, 6, 7), pos)
}
