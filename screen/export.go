package screen

import (
	"context"
	"fmt"
	"time"

	gart "github.com/scottkirkwood/rainbow-gart"
)

// Stage is what a social media export drives: it reshapes the canvas and
// writes whatever is currently on it.
type Stage interface {
	UpdateAspectRatio(aspect gart.AspectRatio) error
	Snapshot(fname string) error
}

// SocialMediaFilename is the name of the n'th (from 1) image of a set.
func SocialMediaFilename(name string, n int, aspect gart.AspectRatio) string {
	return fmt.Sprintf("%s_%02d_%s.png", name, n, aspect.Name)
}

// SaveSocialMediaSet writes one snapshot per aspect ratio in
// gart.AspectRatios. It waits delay after each reshape so the animation can
// settle, and again after each snapshot. It returns the files written.
func SaveSocialMediaSet(ctx context.Context, st Stage, name string, delay time.Duration) ([]string, error) {
	var saved []string
	for i, aspect := range gart.AspectRatios {
		if err := st.UpdateAspectRatio(aspect); err != nil {
			return saved, err
		}
		if err := sleep(ctx, delay); err != nil {
			return saved, err
		}
		fname := SocialMediaFilename(name, i+1, aspect)
		if err := st.Snapshot(fname); err != nil {
			return saved, fmt.Errorf("snapshot %s: %w", fname, err)
		}
		saved = append(saved, fname)
		if err := sleep(ctx, delay); err != nil {
			return saved, err
		}
	}
	return saved, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
