// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/zenify/audio"
	"github.com/ik5/zenify/formats/mp3"
)

// ExampleDecoder_Decode reduces an MP3 to a mono signal at 44.1 kHz.
func ExampleDecoder_Decode() {
	f, err := os.Open("voice.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	sig, err := audio.LoadSignal(src, audio.LoadOptions{Mode: audio.Average, TargetRate: 44100})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%.1f seconds\n", sig.Duration())
}
