package buffers

import (
	"stillscene/assert"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Element is one attribute within a vertex buffer layout
// (e.g. a Vec3 normal at byte offset 12).
type Element struct {
	Offset int
	ElementType
}

type ElementType uint8

const (
	DataTypeUnknown ElementType = iota

	DataTypeUint32
	DataTypeInt32
	DataTypeFloat32

	DataTypeVec2
	DataTypeVec3
	DataTypeVec4
)

func (dt ElementType) GLType() uint32 {

	switch dt {
	case DataTypeUint32:
		return gl.UNSIGNED_INT
	case DataTypeInt32:
		return gl.INT
	case DataTypeFloat32, DataTypeVec2, DataTypeVec3, DataTypeVec4:
		return gl.FLOAT

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// CompCount returns the number of components in the element (e.g. for Vec2 its 2)
func (dt ElementType) CompCount() int32 {

	switch dt {
	case DataTypeUint32, DataTypeInt32, DataTypeFloat32:
		return 1
	case DataTypeVec2:
		return 2
	case DataTypeVec3:
		return 3
	case DataTypeVec4:
		return 4

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// Size returns the total size of the element in bytes. All supported
// component types are 4 bytes wide.
func (dt ElementType) Size() int32 {
	return dt.CompCount() * 4
}
