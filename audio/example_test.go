// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"

	"github.com/ik5/zenify/audio"
	"github.com/ik5/zenify/internal/audiotest"
)

// Example_loadSignal drains a stereo source, averages its channels and
// resamples the result to 16kHz.
func Example_loadSignal() {
	source := audiotest.NewSineSource(44100, 2, 44100, 440.0) // 1 second, 440Hz tone

	sig, err := audio.LoadSignal(source, audio.LoadOptions{
		Mode:       audio.Average,
		TargetRate: 16000,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", sig.SampleRate())
	fmt.Printf("Samples: %d\n", sig.Len())
	fmt.Printf("Duration: %.1f s\n", sig.Duration())
	// Output:
	// Sample rate: 16000 Hz
	// Samples: 16000
	// Duration: 1.0 s
}

// Example_downmix converts interleaved stereo to mono.
func Example_downmix() {
	stereo := []float32{1.0, 0.0, 0.5, 0.5, -1.0, 1.0}

	first, _ := audio.Downmix(stereo, 2, audio.FirstChannel)
	avg, _ := audio.Downmix(stereo, 2, audio.Average)

	fmt.Println(audio.FirstChannel, first)
	fmt.Println(audio.Average, avg)
	// Output:
	// first [1 0.5 -1]
	// average [0.5 0.5 0]
}
