// Package driver runs the order-by-order evaluation of a chiral operator
// over a relative harmonic-oscillator basis and writes one artifact file
// per order plus a cumulative file.
//
// Orders are processed lowest-first through an explicit schedule. Each
// order fills a scratch matrix from scratch, is written out, and is then
// folded into the running cumulative matrix, so an order's artifact never
// carries contributions from its neighbours.
package driver

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/lenpic/chiralme/basis"
	"github.com/lenpic/chiralme/chiral"
	"github.com/lenpic/chiralme/constants"
	"github.com/lenpic/chiralme/ho"
)

var (
	// ErrBadTruncation indicates a negative Nmax or Jmax.
	ErrBadTruncation = errors.New("driver: invalid basis truncation")

	// ErrBadIsospinRange indicates Tmin/Tmax outside 0 ≤ Tmin ≤ Tmax ≤ 2.
	ErrBadIsospinRange = errors.New("driver: invalid isotensor range")

	// ErrBadFrequency indicates a non-positive oscillator frequency.
	ErrBadFrequency = errors.New("driver: oscillator frequency must be positive")

	// ErrBadRegulator indicates regularization with a non-positive length.
	ErrBadRegulator = errors.New("driver: regulator length must be positive")
)

// Config describes one generation run.
type Config struct {
	Operator string  // operator family name, e.g. "m1"
	Order    string  // truncation label, e.g. "n3lo" or "full"
	HW       float64 // oscillator frequency ħω in MeV

	Nmax, Jmax int // basis truncation
	Tmin, Tmax int // isotensor rank range

	Regularize bool
	Regulator  float64 // regulator length in fm

	OutputDir string // artifact directory; empty means the working directory

	// Now stamps artifact names; nil means time.Now. Tests inject a fixed
	// clock for reproducible filenames.
	Now func() time.Time
}

func (c Config) validate() error {
	if c.Nmax < 0 || c.Jmax < 0 {
		return fmt.Errorf("%w: Nmax=%d Jmax=%d", ErrBadTruncation, c.Nmax, c.Jmax)
	}
	if c.Tmin < 0 || c.Tmax > 2 || c.Tmin > c.Tmax {
		return fmt.Errorf("%w: Tmin=%d Tmax=%d", ErrBadIsospinRange, c.Tmin, c.Tmax)
	}
	if c.HW <= 0 {
		return fmt.Errorf("%w: hw=%g", ErrBadFrequency, c.HW)
	}
	if c.Regularize && c.Regulator <= 0 {
		return fmt.Errorf("%w: R=%g", ErrBadRegulator, c.Regulator)
	}
	return nil
}

func (c Config) stamp() int64 {
	if c.Now != nil {
		return c.Now().Unix()
	}
	return time.Now().Unix()
}

// Result lists the artifacts a run produced, order files in processing
// order.
type Result struct {
	OrderArtifacts     []string
	CumulativeArtifact string
}

// Run resolves the operator and truncation by name and evaluates them over
// the configured basis. Name resolution fails before any basis is built.
func Run(cfg Config, logger *zap.Logger) (*Result, error) {
	order, err := chiral.OrderFromLabel(cfg.Order)
	if err != nil {
		return nil, err
	}
	op, err := chiral.New(cfg.Operator, order)
	if err != nil {
		return nil, err
	}
	return RunOperator(cfg, op, logger)
}

// RunOperator evaluates an already-constructed operator over the
// configured basis, writing one artifact per chiral order up to the
// operator's truncation and one cumulative artifact of their sum.
func RunOperator(cfg Config, op chiral.Operator, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	space := basis.NewRelativeSpace(cfg.Nmax, cfg.Jmax)
	labels := basis.OperatorLabels{
		J0:       op.J0(),
		G0:       op.G0(),
		T0Min:    cfg.Tmin,
		T0Max:    cfg.Tmax,
		Symmetry: basis.Hermitian,
	}

	cumulative, err := basis.NewZeroOperator(space, labels)
	if err != nil {
		return nil, err
	}
	scratch, err := cumulative.CloneZero()
	if err != nil {
		return nil, err
	}

	c := constants.Default()
	params := chiral.EvalParams{
		B:          ho.NewOscillatorParameter(c.OscillatorLength(cfg.HW)),
		Regularize: cfg.Regularize,
		Regulator:  cfg.Regulator,
		Constants:  c,
	}

	requested := op.Order()
	truncation := requested.Truncation()
	stamp := cfg.stamp()

	logger.Info("run configured",
		zap.String("operator", op.Name()),
		zap.Stringer("truncation", truncation),
		zap.Int("nmax", cfg.Nmax),
		zap.Int("jmax", cfg.Jmax),
		zap.Float64("hw", cfg.HW),
		zap.Int("dimension", space.Dimension()),
	)

	result := &Result{}
	schedule := newOrderSchedule(truncation)
	for {
		order, ok := schedule.next()
		if !ok {
			break
		}

		zeroOperator(scratch)
		fillOrder(scratch, op, order, params)
		if err := accumulate(cumulative, scratch); err != nil {
			return nil, err
		}

		path := filepath.Join(cfg.OutputDir,
			artifactName(op.Name(), order.String(), cfg, stamp))
		if err := basis.WriteRelativeOperatorFile(path, scratch); err != nil {
			return nil, fmt.Errorf("driver: write %s artifact: %w", order, err)
		}
		result.OrderArtifacts = append(result.OrderArtifacts, path)

		logger.Info("order accumulated",
			zap.Stringer("order", order),
			zap.String("artifact", path),
		)
		schedule.finish(order)
	}

	// The cumulative artifact carries the label the run was requested with,
	// so a "full" run names its sum full_cumulative, not n4lo_cumulative.
	path := filepath.Join(cfg.OutputDir,
		artifactName(op.Name(), requested.String()+"_cumulative", cfg, stamp))
	if err := basis.WriteRelativeOperatorFile(path, cumulative); err != nil {
		return nil, fmt.Errorf("driver: write cumulative artifact: %w", err)
	}
	result.CumulativeArtifact = path

	logger.Info("run complete",
		zap.Int("orders", len(result.OrderArtifacts)),
		zap.String("cumulative", path),
	)
	return result, nil
}

// artifactName renders the fixed naming scheme
// {operator}_2b_rel_{order}_N{Nmax}_J{Jmax}_hw{hw}_{unixtime}.txt.
func artifactName(operator, order string, cfg Config, stamp int64) string {
	return fmt.Sprintf("%s_2b_rel_%s_N%d_J%d_hw%g_%d.txt",
		operator, order, cfg.Nmax, cfg.Jmax, cfg.HW, stamp)
}

// fillOrder overwrites every stored element of dst with the operator's
// reduced matrix elements at a single chiral order. Off-diagonal rows of
// diagonal sectors are filled too; the writer selects the upper triangle.
func fillOrder(dst *basis.OperatorMatrix, op chiral.Operator, order chiral.Order, base chiral.EvalParams) {
	for ti, sectors := range dst.Sectors {
		p := base
		p.T0 = sectors.T0
		blocks := dst.Matrices[ti]
		for si, sec := range sectors.Sectors {
			blk := blocks[si]
			for bi := 0; bi < sec.Bra.Size(); bi++ {
				bra := sec.Bra.State(bi)
				for ki := 0; ki < sec.Ket.Size(); ki++ {
					blk.Set(bi, ki, op.RelativeRME(order, bra, sec.Ket.State(ki), p))
				}
			}
		}
	}
}

func zeroOperator(m *basis.OperatorMatrix) {
	for _, blocks := range m.Matrices {
		blocks.Zero()
	}
}

func accumulate(dst, src *basis.OperatorMatrix) error {
	for ti := range dst.Matrices {
		db, sb := dst.Matrices[ti], src.Matrices[ti]
		for si := range db {
			if err := db[si].AddBlock(sb[si]); err != nil {
				return err
			}
		}
	}
	return nil
}
