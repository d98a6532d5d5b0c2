// SPDX-License-Identifier: EPL-2.0

package synth

// Chord is three note frequencies in Hz.
type Chord [3]float64

// Am G C Am.
var chordTable = [4]Chord{
	{220, 277.18, 329.63},
	{196, 246.94, 293.66},
	{261.63, 329.63, 392},
	{220, 277.18, 329.63},
}

var pentatonicRatios = [5]float64{1, 9.0 / 8, 5.0 / 4, 3.0 / 2, 5.0 / 3}

// C5 D5 E5 G5 A5 C6.
var pianoScale = [6]float64{523.25, 587.33, 659.25, 783.99, 880, 1046.5}

// ChordTable returns the pad progression. The result is a copy.
func ChordTable() [4]Chord { return chordTable }

// PentatonicScale returns the ratios SoftSynth quantises pitch to.
func PentatonicScale() [5]float64 { return pentatonicRatios }

// PianoScale returns the notes GentlePiano picks from.
func PianoScale() [6]float64 { return pianoScale }
