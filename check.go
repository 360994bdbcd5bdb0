package main

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/inets/internal/inet"
)

// Confluence holds the root readback of one net reduced under each
// strategy.
type Confluence struct {
	LIFO, FIFO string
}

// Agree returns true if both strategies reached the same normal form.
func (c Confluence) Agree() bool { return c.LIFO == c.FIFO }

// checkConfluence loads words into two nets, reducing them concurrently, one
// under each strategy.
func checkConfluence(ctx context.Context, words []uint64, opts ...inet.Option) (res Confluence, err error) {
	eg, ctx := errgroup.WithContext(ctx)
	for _, run := range []struct {
		strategy inet.Strategy
		form     *string
	}{
		{inet.LIFO, &res.LIFO},
		{inet.FIFO, &res.FIFO},
	} {
		run := run
		eg.Go(func() error {
			net, err := loadNet(words, inet.Options(opts...), inet.WithStrategy(run.strategy))
			if err != nil {
				return err
			}
			if _, err := net.Reduce(ctx); err != nil {
				return errors.Wrapf(err, "%v reduction", run.strategy)
			}
			*run.form, err = net.Readback(inet.PortPointer(inet.RootAddr, inet.Aux1))
			return err
		})
	}
	err = eg.Wait()
	return res, err
}
