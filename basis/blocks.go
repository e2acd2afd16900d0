package basis

import "errors"

// ErrBlockShape indicates a non-positive block dimension at allocation.
var ErrBlockShape = errors.New("basis: invalid block shape")

// ErrBlockMismatch indicates two blocks of different shape were combined.
var ErrBlockMismatch = errors.New("basis: block shape mismatch")

// Block is a dense row-major matrix of reduced matrix elements for one
// sector: rows follow the bra subspace states, columns the ket subspace
// states. Data is a flat slice of length Rows*Cols for cache friendliness.
type Block struct {
	rows, cols int
	data       []float64
}

// NewBlock allocates a zero-initialized rows×cols block.
func NewBlock(rows, cols int) (*Block, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBlockShape
	}
	return &Block{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the bra dimension.
func (b *Block) Rows() int { return b.rows }

// Cols returns the ket dimension.
func (b *Block) Cols() int { return b.cols }

// At returns the element at (row, col). Indices are trusted: the driver
// iterates the same subspaces the block was shaped from.
func (b *Block) At(row, col int) float64 { return b.data[row*b.cols+col] }

// Set assigns the element at (row, col).
func (b *Block) Set(row, col int, v float64) { b.data[row*b.cols+col] = v }

// Add accumulates v into the element at (row, col).
func (b *Block) Add(row, col int, v float64) { b.data[row*b.cols+col] += v }

// Zero resets every element without reallocating.
func (b *Block) Zero() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// AddBlock accumulates other elementwise into b.
func (b *Block) AddBlock(other *Block) error {
	if b.rows != other.rows || b.cols != other.cols {
		return ErrBlockMismatch
	}
	for i, v := range other.data {
		b.data[i] += v
	}
	return nil
}

// OperatorBlocks is one dense block per sector, in sector order.
type OperatorBlocks []*Block

// NewOperatorBlocks allocates zero blocks matching the sector geometry.
func NewOperatorBlocks(sectors RelativeSectors) (OperatorBlocks, error) {
	blocks := make(OperatorBlocks, 0, len(sectors.Sectors))
	for _, sec := range sectors.Sectors {
		blk, err := NewBlock(sec.Bra.Size(), sec.Ket.Size())
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, blk)
	}
	return blocks, nil
}

// Zero resets every block in place.
func (m OperatorBlocks) Zero() {
	for _, blk := range m {
		blk.Zero()
	}
}

// AllocatedEntries counts the stored elements across all blocks.
func AllocatedEntries(m OperatorBlocks) int {
	var n int
	for _, blk := range m {
		n += blk.Rows() * blk.Cols()
	}
	return n
}

// OperatorMatrix holds, for each isotensor rank T0 in an operator's range,
// the sector list and the matching dense blocks.
type OperatorMatrix struct {
	Labels   OperatorLabels
	Space    RelativeSpace
	Sectors  []RelativeSectors // indexed by T0 − Labels.T0Min
	Matrices []OperatorBlocks  // indexed by T0 − Labels.T0Min
}

// NewZeroOperator builds the sector scaffolding and zero-initialized blocks
// for operator labels over a relative space.
func NewZeroOperator(space RelativeSpace, labels OperatorLabels) (*OperatorMatrix, error) {
	op := &OperatorMatrix{Labels: labels, Space: space}
	for t0 := labels.T0Min; t0 <= labels.T0Max; t0++ {
		sectors := NewRelativeSectors(space, labels, t0)
		blocks, err := NewOperatorBlocks(sectors)
		if err != nil {
			return nil, err
		}
		op.Sectors = append(op.Sectors, sectors)
		op.Matrices = append(op.Matrices, blocks)
	}
	return op, nil
}

// CloneZero returns an operator with identical geometry and zeroed values.
func (op *OperatorMatrix) CloneZero() (*OperatorMatrix, error) {
	return NewZeroOperator(op.Space, op.Labels)
}
