// Command pointer-inspect binds trackers to configured regions and
// prints pointer samples as they arrive. Useful for checking what a
// terminal or desktop actually reports.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"

	pointer "github.com/grindlemire/go-pointer"
)

func main() {
	sourceFlag := flag.String("source", "", "event source: term or desktop (overrides config)")
	flag.Parse()

	initializeConfigIfNot()
	conf := readConfig()
	if *sourceFlag != "" {
		conf.Source = *sourceFlag
	}

	if err := run(conf); err != nil {
		log.Fatalf("pointer-inspect: %v\n", err)
	}
}

func run(conf *config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loop := pointer.NewLoop()
	router := pointer.NewRouter()

	for _, rc := range conf.Regions {
		region := pointer.NewRegion(pointer.NewRect(rc.X, rc.Y, rc.Width, rc.Height))
		router.Add(region)
		watchRegion(rc.Name, region)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		loop.Run()
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		loop.Stop()
		return nil
	})

	switch conf.Source {
	case "term":
		source := pointer.NewTermSource(os.Stdin, os.Stdout, loop, router)
		if err := source.Start(); err != nil {
			loop.Stop()
			return err
		}
		g.Go(func() error {
			<-ctx.Done()
			return source.Stop()
		})

	case "desktop":
		source := pointer.NewDesktopSource(loop, router)
		watchRegion("screen", source.Screen())
		g.Go(func() error {
			return source.Run(ctx)
		})

	default:
		loop.Stop()
		return fmt.Errorf("unknown source %q (want term or desktop)", conf.Source)
	}

	log.Printf("Tracking with source %q; Ctrl+C to exit\n", conf.Source)
	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// watchRegion binds a tracker to the region and logs every sample.
func watchRegion(name string, region *pointer.Region) {
	tracker := pointer.NewTracker(pointer.FixedViewport{})
	tracker.SetCallbacks(pointer.Callbacks{
		OnMove:  logSample(name, "move"),
		OnDown:  logSample(name, "down"),
		OnUp:    logSample(name, "up"),
		OnEnter: logSample(name, "enter"),
		OnLeave: logSample(name, "leave"),
	})
	tracker.SetTarget(region)
}

func logSample(name, kind string) func(pointer.Sample) {
	return func(s pointer.Sample) {
		if s.HasDelta {
			log.Printf("%s %s pos=%s delta=%s\n", name, kind, s.Position, s.Delta)
			return
		}
		log.Printf("%s %s pos=%s\n", name, kind, s.Position)
	}
}
