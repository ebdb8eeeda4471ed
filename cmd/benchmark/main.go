package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/turnsignal/internal/delivery"
	"github.com/delaneyj/turnsignal/signal"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	itersKey   = "iters"
	profileKey = "profile"
)

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 2, 4, 8}
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure broadcast latency of signal.Signal",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Broadcasts measured per configuration",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Uint(itersKey))
	log.Printf("warming up")
	benchmarkFanout(iters, false)

	benchmarkFanout(iters, true)
	benchmarkChurn(iters, true)
	benchmarkNested(iters, true)
	return nil
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "order"})
	return tbl
}

func appendMetrics(tbl table.Writer, name string, tach *tachymeter.Tachymeter, digest uint64) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
			fmt.Sprintf("%016x", digest),
		},
	})
}

// benchmarkFanout emits to w plain slots.
func benchmarkFanout(iters int, shouldRender bool) {
	tbl := newTable("Fan-out")

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		var s signal.Signal0
		rec := delivery.New()
		for i := 0; i < w; i++ {
			s.Connect(rec.Slot(delivery.Index(i)))
		}

		for i := 0; i < iters; i++ {
			rec.Reset()
			start := time.Now()
			s.Emit()
			tach.AddTime(time.Since(start))
		}
		appendMetrics(tbl, fmt.Sprintf("emit: %d slots", w), tach, rec.Sum64())
		s.Close()
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkChurn has every slot hand its subscription to a fresh handle while
// the broadcast is running, which keeps the token repair path hot.
func benchmarkChurn(iters int, shouldRender bool) {
	tbl := newTable("Churn")

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		var s signal.Signal1[int]
		conns := make([]*signal.Connection[func(int)], w)
		slot := func(i int) func(int) {
			return func(int) {
				conns[i] = conns[i].Transfer()
			}
		}
		for i := range conns {
			conns[i] = s.Connect(slot(i))
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			s.Emit(i)
			tach.AddTime(time.Since(start))
		}
		appendMetrics(tbl, fmt.Sprintf("transfer: %d slots", w), tach, delivery.Digest(fmt.Sprint(s.Len())))
		s.Close()
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkNested emits again from the first slot until the nesting depth is
// h, every frame visiting all w slots.
func benchmarkNested(iters int, shouldRender bool) {
	tbl := newTable("Nested emits")

	for _, w := range ww[:3] {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			var s signal.Signal0
			rec := delivery.New()
			depth := 0
			s.Connect(func() {
				if depth < h {
					depth++
					s.Emit()
					depth--
				}
			})
			for i := 1; i < w; i++ {
				s.Connect(rec.Slot(delivery.Index(i)))
			}

			for i := 0; i < iters; i++ {
				rec.Reset()
				start := time.Now()
				s.Emit()
				tach.AddTime(time.Since(start))
			}
			appendMetrics(tbl, fmt.Sprintf("nested: %d slots * %d deep", w, h), tach, rec.Sum64())
			s.Close()
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
