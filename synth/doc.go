// SPDX-License-Identifier: EPL-2.0

// Package synth contains the generative layers of the zen composition.
//
// Every layer adds into a caller-owned []float64 in place. Additive layers
// scale their contribution by the layer amplitude and the envelope value
// aligned with each sample; ReverbTail instead feeds the buffer back into
// itself and must therefore run after the layers it should colour.
//
// The stochastic layers (GentlePiano, Shimmer, RainDrops) draw from an
// injected Rand so a seeded generator gives reproducible output:
//
//	rng := rand.New(rand.NewPCG(seed, 0))
//	synth.NewGentlePiano(rng).Render(buf, in)
package synth
