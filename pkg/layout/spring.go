package layout

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/flightgraph/pkg/errors"
	"github.com/matzehuels/flightgraph/pkg/network"
)

const (
	// DefaultIterations is the number of spring simulation steps.
	DefaultIterations = 50

	// DefaultScale is the half-width of the z range of 3D layouts.
	DefaultScale = 1.0

	minDistance   = 0.01
	convergeDelta = 1e-4

	// PCG stream selectors so that x/y and z draws never share a sequence.
	planeStream = 0x9e3779b97f4a7c15
	depthStream = 0xbf58476d1ce4e5b9
)

// Options configures Compute.
type Options struct {
	// Dimensions is 2 or 3.
	Dimensions int

	// Seed drives the initial spring positions and, without Jitter, the z draws.
	Seed uint64

	// Scale bounds z to [-Scale, Scale]. Zero means DefaultScale.
	Scale float64

	// Iterations is the number of simulation steps. Zero means DefaultIterations.
	Iterations int

	// Jitter, when set, supplies the z draws of 3D layouts.
	Jitter *rand.Rand
}

func (o Options) withDefaults() Options {
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Iterations == 0 {
		o.Iterations = DefaultIterations
	}
	return o
}

// Compute lays out every node of g. An empty graph gives an empty layout.
func Compute(g *network.Graph, opts Options) (*Layout, error) {
	opts = opts.withDefaults()
	if err := ValidateDimensions(opts.Dimensions); err != nil {
		return nil, err
	}
	if opts.Scale < 0 || math.IsNaN(opts.Scale) || math.IsInf(opts.Scale, 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scale must be a finite non-negative number, got %v", opts.Scale)
	}
	if opts.Iterations < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "iterations cannot be negative, got %d", opts.Iterations)
	}

	ids := g.Nodes()
	xy := spring(g, ids, opts.Seed, opts.Iterations)
	rescale(xy)

	points := make([]Point, len(ids))
	for i := range ids {
		points[i] = Point{X: xy[i][0], Y: xy[i][1]}
	}

	if opts.Dimensions == 3 {
		rng := opts.Jitter
		if rng == nil {
			rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed^depthStream))
		}
		for i := range points {
			points[i].Z = (2*rng.Float64() - 1) * opts.Scale
		}
	}

	return FromPoints(opts.Dimensions, ids, points)
}

// spring runs the Fruchterman-Reingold simulation on the unit square.
func spring(g *network.Graph, ids []string, seed uint64, iterations int) [][2]float64 {
	n := len(ids)
	pos := make([][2]float64, n)
	if n == 0 {
		return pos
	}

	rng := rand.New(rand.NewPCG(seed, seed^planeStream))
	for i := range pos {
		pos[i] = [2]float64{rng.Float64(), rng.Float64()}
	}
	if n == 1 {
		return pos
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		adj[u][v], adj[v][u] = true, true
	}

	k := math.Sqrt(1 / float64(n))
	t := 0.1 * max(span(pos, 0), span(pos, 1))
	dt := t / float64(iterations+1)

	disp := make([][2]float64, n)
	for range iterations {
		for i := range pos {
			disp[i] = [2]float64{}
			for j := range pos {
				if i == j {
					continue
				}
				dx, dy := pos[i][0]-pos[j][0], pos[i][1]-pos[j][1]
				d := max(math.Hypot(dx, dy), minDistance)
				f := k * k / (d * d)
				if adj[i][j] {
					f -= d / k
				}
				disp[i][0] += dx * f
				disp[i][1] += dy * f
			}
		}

		moved := 0.0
		for i := range pos {
			length := math.Hypot(disp[i][0], disp[i][1])
			if length < minDistance {
				length = 0.1
			}
			sx, sy := disp[i][0]*t/length, disp[i][1]*t/length
			pos[i][0] += sx
			pos[i][1] += sy
			moved += sx*sx + sy*sy
		}
		t -= dt
		if math.Sqrt(moved)/float64(n) < convergeDelta {
			break
		}
	}
	return pos
}

func span(pos [][2]float64, axis int) float64 {
	lo, hi := pos[0][axis], pos[0][axis]
	for _, p := range pos[1:] {
		lo, hi = min(lo, p[axis]), max(hi, p[axis])
	}
	return hi - lo
}

// rescale centers pos on the origin and scales it so that the largest
// absolute coordinate is 1.
func rescale(pos [][2]float64) {
	if len(pos) == 0 {
		return
	}
	var mean [2]float64
	for _, p := range pos {
		mean[0] += p[0]
		mean[1] += p[1]
	}
	mean[0] /= float64(len(pos))
	mean[1] /= float64(len(pos))

	lim := 0.0
	for i := range pos {
		pos[i][0] -= mean[0]
		pos[i][1] -= mean[1]
		lim = max(lim, math.Abs(pos[i][0]), math.Abs(pos[i][1]))
	}
	if lim == 0 {
		return
	}
	for i := range pos {
		pos[i][0] /= lim
		pos[i][1] /= lim
	}
}
