package iopopulate

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/skillgap/pkg/gap"
	"github.com/gnames/skillgap/pkg/lifecycle"
	"github.com/gnames/skillgap/pkg/schema"
	"golang.org/x/sync/errgroup"
)

// verdicts is the classification result of one skill.
type verdicts struct {
	idx       int
	current   gap.Verdict
	future    gap.Verdict
	isInvalid bool
}

// classify fills GapCurrent, GapFuture and LastUpdated of every skill
// using p.cfg.JobsNumber workers. Workers write to distinct slice
// elements, the collector only counts.
func (p *populator) classify(
	ctx context.Context,
	recs *schema.Records,
) (*lifecycle.Report, error) {
	chIn := make(chan int)
	chOut := make(chan verdicts)

	g, ctx := errgroup.WithContext(ctx)
	var wg sync.WaitGroup

	now := p.now().UTC()
	for range max(p.cfg.JobsNumber, 1) {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return classifyWorker(ctx, recs.Skills, now, chIn, chOut)
		})
	}

	res := &lifecycle.Report{}
	g.Go(func() error {
		return collect(ctx, len(recs.Skills), chOut, res)
	})

	go func() {
		wg.Wait()
		close(chOut)
	}()

	g.Go(func() error {
		defer close(chIn)
		for i := range recs.Skills {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case chIn <- i:
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) {
			return nil, CancelledError(err)
		}
		return nil, err
	}
	return res, nil
}

func classifyWorker(
	ctx context.Context,
	skills []schema.Skill,
	now time.Time,
	chIn <-chan int,
	chOut chan<- verdicts,
) error {
	for i := range chIn {
		s := &skills[i]
		a := gap.Assess(
			s.CurrentProficiency,
			s.ExpectedCurrentProficiency,
			s.ExpectedFutureProficiency,
		)
		s.GapCurrent = a.Current.String()
		s.GapFuture = a.Future.String()
		s.LastUpdated = now

		v := verdicts{
			idx:       i,
			current:   a.Current,
			future:    a.Future,
			isInvalid: len(a.Errs) > 0,
		}
		if v.isInvalid {
			slog.Warn("Invalid proficiency",
				"nbk", s.EmployeeNBK, "skill", s.SkillName, "error", a.Errs[0])
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case chOut <- v:
		}
	}
	return nil
}

func collect(
	ctx context.Context,
	total int,
	chOut <-chan verdicts,
	res *lifecycle.Report,
) error {
	bar := pb.Full.Start(total)
	bar.Set("prefix", "Classifying skills: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for v := range chOut {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		switch {
		case v.isInvalid:
			res.InvalidSkills++
		default:
			if v.current.IsGap() {
				res.CurrentGaps++
			}
			if v.future.IsGap() {
				res.FutureGaps++
			}
		}
		bar.Increment()
	}
	return nil
}
