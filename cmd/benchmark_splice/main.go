package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/turnsignal/ilist"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	repeatsKey = "repeats"
	maxSizeKey = "max"
)

type node struct {
	id   int
	link ilist.Element[*node, ilist.DefaultTag]
}

type nodeList = ilist.List[*node, ilist.DefaultTag]

func main() {
	cmd := &cli.Command{
		Name:  "benchmark_splice",
		Usage: "Show that splicing a range costs the same at any range length",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  repeatsKey,
				Usage: "Splices timed per range length",
				Value: 100_000,
			},
			&cli.UintFlag{
				Name:  maxSizeKey,
				Usage: "Largest range length",
				Value: 1_000_000,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting splice benchmark, please wait...")
	defer log.Print("Finished splice benchmark")

	repeats := int(cmd.Uint(repeatsKey))
	maxSize := int(cmd.Uint(maxSizeKey))
	if repeats == 0 {
		return fmt.Errorf("%s must be positive", repeatsKey)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"range", "splices", "total", "per splice", "splice rate", "walk (Len)"})

	for size := 1; size <= maxSize; size *= 10 {
		log.Printf("Running range of %s elements", humanize.Comma(int64(size)))

		var a, b nodeList
		nodes := make([]node, size)
		for i := range nodes {
			nodes[i].id = i
			nodes[i].link.Value = &nodes[i]
			a.PushBack(&nodes[i].link)
		}

		// bounce the whole range between the two lists
		start := time.Now()
		for i := 0; i < repeats; i++ {
			if i%2 == 0 {
				b.Splice(b.End(), &a, a.Begin(), a.End())
			} else {
				a.Splice(a.End(), &b, b.Begin(), b.End())
			}
		}
		total := time.Since(start)

		walkStart := time.Now()
		n := a.Len() + b.Len()
		walk := time.Since(walkStart)
		if n != size {
			return fmt.Errorf("lost elements: have %d, want %d", n, size)
		}
		if err := a.Verify(); err != nil {
			return err
		}
		if err := b.Verify(); err != nil {
			return err
		}

		perSplice := total / time.Duration(repeats)
		rate := float64(repeats) / total.Seconds()
		table.Append([]string{
			humanize.Comma(int64(size)),
			humanize.Comma(int64(repeats)),
			total.String(),
			perSplice.String(),
			humanize.SIWithDigits(rate, 2, "splice/s"),
			walk.String(),
		})
		a.Clear()
		b.Clear()
	}

	table.Render()
	return nil
}
