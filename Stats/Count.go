package Stats

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"time"

	"github.com/g-m-twostay/sortedcontainer/Queues"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Mode    Mode
	Counter string // kind of Counter, see NewCounter
	Workers int    // defaults to GOMAXPROCS when not positive
	Log     zerolog.Logger
}

// Count the words of r. All lines are read into a queue first, which
// Workers goroutines then drain concurrently into the counter.
func Count(ctx context.Context, r io.Reader, opts Options) (Counter, error) {
	c, err := NewCounter(opts.Counter)
	if err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	start := time.Now()

	lines := Queues.NewConcurrentLinkedQueue[string]()
	nLines := 0
	for br := bufio.NewReader(r); ; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lines.Push(line)
			nLines++
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrapf(err, "read line %d", nLines+1)
		}
	}
	opts.Log.Debug().Int("lines", nLines).Dur("elapsed", time.Since(start)).Msg("read")

	g, ctx := errgroup.WithContext(ctx)
	for range workers {
		g.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				line, err := lines.Pop()
				if err != nil { //drained
					return nil
				}
				Words(line, opts.Mode, c.Add)
			}
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	opts.Log.Debug().Int("workers", workers).Int("distinct", c.Len()).Dur("elapsed", time.Since(start)).Msg("counted")
	return c, nil
}
