package engine

import (
	"github.com/vybium/primefield/pkg/primefield/field"
	"github.com/vybium/primefield/pkg/primefield/fielderr"
	"github.com/vybium/primefield/pkg/primefield/wideint"
)

// MatrixHandle is spec.md §3's matrix: a row-major contiguous block of
// rows*cols field elements, sharing the same lifecycle and layout
// discipline as VectorHandle.
type MatrixHandle struct {
	facade *Facade
	buffer *Buffer
	offset int
	rows   int
	cols   int
}

// NewMatrix allocates a fresh MatrixHandle over a new buffer holding
// values in row-major order; len(values) must equal rows*cols.
func (fc *Facade) NewMatrix(values []field.Element, rows, cols int) (*MatrixHandle, error) {
	if len(values) != rows*cols {
		return nil, fielderr.New(fielderr.DimensionMismatch, "value count %d does not match %dx%d", len(values), rows, cols)
	}
	buf := NewBufferFromValues(fc.Field, values)
	return &MatrixHandle{facade: fc, buffer: buf, offset: 0, rows: rows, cols: cols}, nil
}

// Rows returns the row count.
func (m *MatrixHandle) Rows() int {
	return m.rows
}

// Cols returns the column count.
func (m *MatrixHandle) Cols() int {
	return m.cols
}

// GetValue returns the element at (row, col), per spec.md §6's
// get_value(idx) generalized to two dimensions.
func (m *MatrixHandle) GetValue(row, col int) (field.Element, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return field.Element{}, fielderr.New(fielderr.OutOfRange, "(%d,%d) out of range for %dx%d matrix", row, col, m.rows, m.cols)
	}
	return m.buffer.GetValue(m.offset + row*m.cols + col)
}

// SetValue writes raw to (row, col), rejecting raw >= 2^128 with
// OUT_OF_RANGE per spec.md §6/§7 (see VectorHandle.SetValue for why this
// check has teeth only at a wider-representation boundary).
func (m *MatrixHandle) SetValue(row, col int, raw wideint.Uint128) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fielderr.New(fielderr.OutOfRange, "(%d,%d) out of range for %dx%d matrix", row, col, m.rows, m.cols)
	}
	return m.buffer.SetValue(m.offset+row*m.cols+col, raw)
}

// ToValues returns a copy of the matrix's row-major backing elements.
func (m *MatrixHandle) ToValues() []field.Element {
	out, _ := m.buffer.Slice(m.offset, m.rows*m.cols)
	return out
}

// RowsToBuffers returns the little-endian wire encoding of each requested
// row index, per spec.md §6's rows_to_buffers([indexes]).
func (m *MatrixHandle) RowsToBuffers(indexes []int) ([][]byte, error) {
	size := m.facade.Field.ElementSize()
	out := make([][]byte, len(indexes))
	for i, row := range indexes {
		if row < 0 || row >= m.rows {
			return nil, fielderr.New(fielderr.OutOfRange, "row %d out of range [0,%d)", row, m.rows)
		}
		vals, err := m.buffer.Slice(m.offset+row*m.cols, m.cols)
		if err != nil {
			return nil, err
		}
		buf := make([]byte, 0, m.cols*size)
		for _, e := range vals {
			b := e.Bytes16()
			buf = append(buf, b[:size]...)
		}
		out[i] = buf
	}
	return out, nil
}

// Close releases this handle's backing buffer (see VectorHandle.Close).
func (m *MatrixHandle) Close() {
	m.buffer.Release()
	m.rows, m.cols = 0, 0
}

// MatMul returns m*other, per spec.md §4.3/§4.5, failing DIMENSION_MISMATCH
// on incompatible inner dimensions.
func (m *MatrixHandle) MatMul(other *MatrixHandle) (*MatrixHandle, error) {
	out, err := m.facade.engine.MatMul(m.ToValues(), m.rows, m.cols, other.ToValues(), other.rows, other.cols)
	if err != nil {
		return nil, err
	}
	return m.facade.NewMatrix(out, m.rows, other.cols)
}

// MatVecMul returns m*x, the p=1 specialization of MatMul.
func (m *MatrixHandle) MatVecMul(x *VectorHandle) (*VectorHandle, error) {
	out, err := m.facade.engine.MatMul(m.ToValues(), m.rows, m.cols, x.ToValues(), x.length, 1)
	if err != nil {
		return nil, err
	}
	return m.facade.result(out), nil
}
