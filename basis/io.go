package basis

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// File format for a relative LSJT operator (fixed contract):
//
//	version line          "version 1"
//	operator labels       "J0 G0 T0_min T0_max symmetry"
//	truncation            "Nmax Jmax"
//	matrix element lines  "T0 N' L' S' J' T' N L S J T  value"
//
// Lines appear in (T0, sector, bra state, ket state) order; diagonal
// sectors list only the upper triangle. Values are printed with %.8e so
// identical inputs yield byte-identical files.

const fileVersion = 1

// WriteRelativeOperator serializes a filled operator to w.
func WriteRelativeOperator(w io.Writer, op *OperatorMatrix) error {
	bw := bufio.NewWriter(w)

	labels := op.Labels
	if _, err := fmt.Fprintf(bw, "version %d\n", fileVersion); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%d %d %d %d %d\n",
		labels.J0, labels.G0, labels.T0Min, labels.T0Max, labels.Symmetry); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%d %d\n", op.Space.Nmax, op.Space.Jmax); err != nil {
		return err
	}

	for ti, sectors := range op.Sectors {
		blocks := op.Matrices[ti]
		for si, sec := range sectors.Sectors {
			blk := blocks[si]
			for bi := 0; bi < sec.Bra.Size(); bi++ {
				kmin := 0
				if sec.IsDiagonal() {
					kmin = bi
				}
				for ki := kmin; ki < sec.Ket.Size(); ki++ {
					bra, ket := sec.Bra.State(bi), sec.Ket.State(ki)
					if _, err := fmt.Fprintf(bw,
						"%d %d %d %d %d %d %d %d %d %d %d %.8e\n",
						sectors.T0,
						bra.N, bra.L, bra.S, bra.J, bra.T,
						ket.N, ket.L, ket.S, ket.J, ket.T,
						blk.At(bi, ki)); err != nil {
						return err
					}
				}
			}
		}
	}

	return bw.Flush()
}

// WriteRelativeOperatorFile serializes a filled operator to path, creating
// or truncating the file.
func WriteRelativeOperatorFile(path string, op *OperatorMatrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteRelativeOperator(f, op); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
