// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"context"

	"github.com/ik5/zenify/audio"
	"golang.org/x/sync/errgroup"
)

// Features holds the control tracks for one recording.
type Features struct {
	Envelope Track
	Pitch    Track
}

// Extract computes envelope and pitch concurrently. Both are pure
// functions of sig, so the result does not depend on scheduling.
func Extract(ctx context.Context, sig audio.SignalBuffer) (Features, error) {
	if err := sig.Validate(); err != nil {
		return Features{}, err
	}

	var feat Features
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		feat.Envelope = Envelope(sig)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		feat.Pitch = Pitch(sig)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Features{}, err
	}

	return feat, nil
}
