/*
 *	Copyright 2024 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package shapes

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	scalar := ScalarShape()
	require.True(t, scalar.IsScalar())
	require.Equal(t, 0, scalar.Rank())
	require.Equal(t, 1, scalar.Size())
	require.Empty(t, scalar.Dims())

	emptyList := EmptyList()
	require.False(t, emptyList.IsScalar())
	require.Equal(t, 1, emptyList.Rank())
	require.Equal(t, 0, emptyList.Size())
	require.False(t, scalar.Equal(emptyList))

	shape := Make(4, 3, 2)
	require.False(t, shape.IsScalar())
	require.Equal(t, 3, shape.Rank())
	require.Equal(t, []int{4, 3, 2}, shape.Dims())
	require.Equal(t, 4*3*2, shape.Size())

	// The zero value is the scalar shape and is ready to use.
	var zero Shape
	require.True(t, zero.IsScalar())
	require.Equal(t, 1, zero.Size())
}

func TestDim(t *testing.T) {
	shape := Make(4, 3, 2)
	require.Equal(t, 4, shape.Dim(0))
	require.Equal(t, 3, shape.Dim(1))
	require.Equal(t, 2, shape.Dim(2))
	require.Equal(t, 4, shape.Dim(-3))
	require.Equal(t, 3, shape.Dim(-2))
	require.Equal(t, 2, shape.Dim(-1))
	require.Panics(t, func() { _ = shape.Dim(3) })
	require.Panics(t, func() { _ = shape.Dim(-4) })
}

func TestPushPop(t *testing.T) {
	shape := ScalarShape()
	shape.Push(2)
	shape.Push(3)
	require.Equal(t, []int{2, 3}, shape.Dims())

	dim, ok := shape.Pop()
	require.True(t, ok)
	require.Equal(t, 3, dim)
	require.Equal(t, []int{2}, shape.Dims())

	dim, ok = shape.Pop()
	require.True(t, ok)
	require.Equal(t, 2, dim)

	_, ok = shape.Pop()
	require.False(t, ok)
	require.True(t, shape.IsScalar())
}

func TestInsertRemove(t *testing.T) {
	shape := Make(2, 4)
	shape.Insert(1, 3)
	require.Equal(t, []int{2, 3, 4}, shape.Dims())
	shape.Insert(3, 5)
	require.Equal(t, []int{2, 3, 4, 5}, shape.Dims())
	require.Panics(t, func() { shape.Insert(5, 1) })

	require.Equal(t, 3, shape.Remove(1))
	require.Equal(t, []int{2, 4, 5}, shape.Dims())
	require.Equal(t, 5, shape.Remove(2))
	require.Equal(t, []int{2, 4}, shape.Dims())
	require.Panics(t, func() { shape.Remove(2) })
}

func TestDrainTruncate(t *testing.T) {
	shape := Make(2, 3, 4, 5, 6)
	shape.Drain(1, 3)
	require.Equal(t, []int{2, 5, 6}, shape.Dims())
	require.Panics(t, func() { shape.Drain(2, 1) })
	require.Panics(t, func() { shape.Drain(0, 4) })

	shape.Truncate(5) // No-op: already below.
	require.Equal(t, []int{2, 5, 6}, shape.Dims())
	shape.Truncate(1)
	require.Equal(t, []int{2}, shape.Dims())
	shape.Truncate(0)
	require.True(t, shape.IsScalar())
}

func TestSplitOff(t *testing.T) {
	shape := Make(2, 3, 4, 5)
	tail := shape.SplitOff(2)
	require.Equal(t, []int{2, 3}, shape.Dims())
	require.Equal(t, []int{4, 5}, tail.Dims())

	// Splitting at the end yields an empty (scalar) tail.
	tail = shape.SplitOff(2)
	require.True(t, tail.IsScalar())
	require.Equal(t, []int{2, 3}, shape.Dims())
}

func TestExtend(t *testing.T) {
	shape := Make(2)
	shape.Extend(3, 4)
	require.Equal(t, []int{2, 3, 4}, shape.Dims())
	shape.ExtendFromSlice([]int{5, 6})
	require.Equal(t, []int{2, 3, 4, 5, 6}, shape.Dims())
	require.Equal(t, 2*3*4*5*6, shape.Size())
}

// TestSpill exercises the same operations across the inline-to-heap storage
// boundary: nothing observable may change at rank 4+.
func TestSpill(t *testing.T) {
	shape := ScalarShape()
	for dim := 1; dim <= 7; dim++ {
		shape.Push(dim)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, shape.Dims())
	require.Equal(t, 7, shape.Rank())
	require.Equal(t, 5040, shape.Size())
	require.Equal(t, 7, shape.Dim(-1))

	shape.Insert(0, 9)
	require.Equal(t, []int{9, 1, 2, 3, 4, 5, 6, 7}, shape.Dims())
	require.Equal(t, 9, shape.Remove(0))

	// Truncating back below the inline capacity keeps behaving the same.
	shape.Truncate(2)
	require.Equal(t, []int{1, 2}, shape.Dims())
	require.Equal(t, 2, shape.Size())
	shape.Push(3)
	require.Equal(t, []int{1, 2, 3}, shape.Dims())
}

func TestClone(t *testing.T) {
	shape := Make(2, 3, 4, 5)
	clone := shape.Clone()
	clone.Dims()[0] = 7
	require.Equal(t, []int{2, 3, 4, 5}, shape.Dims())
	require.Equal(t, []int{7, 3, 4, 5}, clone.Dims())
}

func TestRows(t *testing.T) {
	shape := Make(2, 3, 4)
	require.Equal(t, 2, shape.RowCount())
	require.Equal(t, 12, shape.RowLen())
	require.Equal(t, 24, shape.Size())
	row := shape.Row()
	require.Equal(t, []int{3, 4}, row.Dims())
	require.Equal(t, []int{3, 4}, shape.RowSlice())
	shape.MakeRow()
	require.Equal(t, []int{3, 4}, shape.Dims())

	scalar := ScalarShape()
	require.Equal(t, 1, scalar.RowCount())
	require.Equal(t, 1, scalar.RowLen())
	require.True(t, scalar.Row().IsScalar())
	require.Empty(t, scalar.RowSlice())
	scalar.MakeRow() // No-op on a scalar.
	require.True(t, scalar.IsScalar())
}

func TestRowCountMut(t *testing.T) {
	shape := Make(2, 3)
	rowCount := shape.RowCountMut()
	*rowCount = 5
	require.Equal(t, []int{5, 3}, shape.Dims())

	// On a scalar a unit leading axis is created on demand.
	scalar := ScalarShape()
	rowCount = scalar.RowCountMut()
	require.Equal(t, 1, *rowCount)
	*rowCount = 7
	require.Equal(t, []int{7}, scalar.Dims())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[2 × 3 × 4]", Make(2, 3, 4).String())
	assert.Equal(t, "[5]", Make(5).String())
	assert.Equal(t, "[]", ScalarShape().String())
	assert.Equal(t, "[0]", EmptyList().String())
}

func TestEqual(t *testing.T) {
	require.True(t, Make(2, 3).Equal(Make(2, 3)))
	require.False(t, Make(2, 3).Equal(Make(3, 2)))
	require.False(t, Make(2, 3).Equal(Make(2, 3, 1)))

	require.True(t, Make(5).EqualSlice([]int{5}))
	require.True(t, Make(5).EqualDim(5))
	require.False(t, Make(5).EqualDim(4))
	require.False(t, ScalarShape().EqualDim(1))

	// Cross-type equality, in either operand order.
	require.True(t, Equal(Make(5), 5))
	require.True(t, Equal(5, Make(5)))
	require.True(t, Equal(Make(5), []int{5}))
	require.True(t, Equal([]int{5}, Make(5)))
	require.True(t, Equal([]int{2, 3}, Make(2, 3)))
	require.False(t, Equal(Make(2, 3), Make(3, 2)))
	require.False(t, Equal(Make(5), "5"))

	shape := Make(2, 3)
	require.True(t, Equal(&shape, []int{2, 3}))
}

func TestCompare(t *testing.T) {
	require.Equal(t, 0, Make(2, 3).Compare(Make(2, 3)))
	require.Equal(t, -1, Make(2, 3).Compare(Make(2, 4)))
	require.Equal(t, -1, Make(2, 4).Compare(Make(3)))
	require.Equal(t, 1, Make(3).Compare(Make(2, 4)))
	require.Equal(t, -1, ScalarShape().Compare(Make(1)))
}

func TestGobSerialization(t *testing.T) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	want := Make(2, 3, 4, 5)
	require.NoError(t, want.GobSerialize(enc))

	dec := gob.NewDecoder(&buf)
	got, err := GobDeserialize(dec)
	require.NoError(t, err)
	require.True(t, want.Equal(got))
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(Make(2, 3))
	require.NoError(t, err)
	assert.Equal(t, "[2,3]", string(data))

	data, err = json.Marshal(ScalarShape())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	var shape Shape
	require.NoError(t, json.Unmarshal([]byte("[2,3,4,5]"), &shape))
	require.Equal(t, []int{2, 3, 4, 5}, shape.Dims())
	require.Error(t, json.Unmarshal([]byte(`"oops"`), &shape))
}

func TestAsserts(t *testing.T) {
	shape := Make(4, 3)
	require.NoError(t, shape.CheckDims(4, 3))
	require.NoError(t, shape.CheckDims(4, UncheckedAxis))
	require.Error(t, shape.CheckDims(4))
	require.Error(t, shape.CheckDims(4, 2))
	require.NotPanics(t, func() { shape.AssertDims(4, -1) })
	require.Panics(t, func() { shape.AssertDims(3, 4) })

	require.NoError(t, shape.CheckRank(2))
	require.Error(t, shape.CheckRank(1))
	require.Panics(t, func() { shape.AssertRank(3) })

	require.Error(t, shape.CheckScalar())
	require.NoError(t, ScalarShape().CheckScalar())
	require.NotPanics(t, func() { ScalarShape().AssertScalar() })

	// Shape implements HasShape itself.
	require.NoError(t, CheckDims(shape, 4, 3))
	require.NoError(t, CheckRank(shape, 2))
	require.Error(t, CheckScalar(shape))
	require.NotPanics(t, func() { AssertDims(shape, 4, 3) })
	require.Panics(t, func() { AssertRank(shape, 0) })
	require.Panics(t, func() { AssertScalar(shape) })
}
