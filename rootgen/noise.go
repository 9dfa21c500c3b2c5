package rootgen

import (
	opensimplex "github.com/ojrac/opensimplex-go"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/rootgen/geom"
)

// Internal fractal parameters of the deformation noise. The per-octave
// gain is a property of the noise itself, distinct from the user-facing
// roughness amplitude.
const (
	noiseOctaves    = 3
	noiseGain       = 0.7
	noiseLacunarity = 2.0
)

// deformer displaces curve vertices with coherent 3D noise. Three
// normalized OpenSimplex fields, one per output channel, are derived from
// the generation seed.
type deformer struct {
	channels  [3]opensimplex.Noise
	scale     float64
	roughness float64
}

func newDeformer(seed int64, scale, roughness float64) *deformer {
	d := &deformer{scale: scale, roughness: roughness}
	for i := range d.channels {
		d.channels[i] = opensimplex.NewNormalized(seed + int64(i))
	}
	return d
}

// fbm samples one channel at p with fractal detail, result in [0,1].
func (d *deformer) fbm(ch int, p r3.Vec) float64 {
	var sum, norm float64
	amp, freq := 1.0, 1.0
	for o := 0; o < noiseOctaves; o++ {
		sum += amp * d.channels[ch].Eval3(p.X*freq, p.Y*freq, p.Z*freq)
		norm += amp
		amp *= noiseGain
		freq *= noiseLacunarity
	}
	return sum / norm
}

// Offset returns the displacement for a vertex at position p with curve
// parameter t. Each channel is centered around zero and scaled by
// roughness; the 0.8t+0.2 ramp keeps curve bases anchored to their
// parents while tips deform freely.
func (d *deformer) Offset(p r3.Vec, t float64) r3.Vec {
	if d.roughness == 0 {
		return r3.Vec{}
	}
	q := r3.Scale(d.scale, p)
	amp := d.roughness * (0.8*t + 0.2)
	return r3.Vec{
		X: (d.fbm(0, q) - 0.5) * amp,
		Y: (d.fbm(1, q) - 0.5) * amp,
		Z: (d.fbm(2, q) - 0.5) * amp,
	}
}

// Deform displaces every point of c in place.
func (d *deformer) Deform(c *geom.Curve) {
	for i := range c.Points {
		c.Points[i] = r3.Add(c.Points[i], d.Offset(c.Points[i], c.Param(i)))
	}
}
