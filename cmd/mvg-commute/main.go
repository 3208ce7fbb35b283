package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/theoremus-urban-solutions/mvg-commute/cache"
	"github.com/theoremus-urban-solutions/mvg-commute/config"
	"github.com/theoremus-urban-solutions/mvg-commute/display"
	"github.com/theoremus-urban-solutions/mvg-commute/internal"
	"github.com/theoremus-urban-solutions/mvg-commute/mvg"
)

type arguments struct {
	configPath string
	show       int
	fresh      bool
	dumpCache  bool
	startTime  time.Time
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}

func loadCache(path string, fresh bool) cache.ConnectionsCache {
	if fresh {
		log.Printf("Cache discarded per command line arguments")
		return cache.ConnectionsCache{}
	}
	cc, ok := cache.Load(path)
	if !ok {
		return cache.ConnectionsCache{}
	}
	return cc
}

// fetchDesired resolves both station names and queries connections
// departing once the walk to the start station is done.
func fetchDesired(ctx context.Context, client *mvg.Client, desired config.DesiredConnection, now time.Time) ([]mvg.Connection, error) {
	start, err := client.FindUnambiguousStationByName(ctx, desired.Start)
	if err != nil {
		return nil, err
	}
	destination, err := client.FindUnambiguousStationByName(ctx, desired.Destination)
	if err != nil {
		return nil, err
	}
	return client.GetConnections(ctx, start, destination, now.Add(desired.WalkToStart.Std()))
}

func run(args arguments) error {
	cfg, err := loadConfig(args.configPath)
	if err != nil {
		return err
	}
	cachePath, err := cache.DefaultPath()
	if err != nil {
		return err
	}
	now := args.startTime

	cc := loadCache(cachePath, args.fresh).Reconcile(cfg.Connections)
	log.Printf("Found %d connections in cache for current configuration", len(cc.AllConnections()))

	if args.dumpCache {
		for _, wc := range cc.AllConnections() {
			fmt.Println(display.Render(wc.Connection, wc.WalkToStart, now))
		}
		return nil
	}

	cached := len(cc.AllConnections())
	cc = cc.EvictUnreachable(now).EvictTooFew(cache.DefaultMinConnections)
	log.Printf("%d connections remained in cache after eviction, evicted %d connections",
		len(cc.AllConnections()), cached-len(cc.AllConnections()))

	client := mvg.NewClient()
	cc, err = cc.RefreshEmpty(context.Background(), func(ctx context.Context, desired config.DesiredConnection) ([]mvg.Connection, error) {
		return fetchDesired(ctx, client, desired, now)
	})
	if err != nil {
		return err
	}

	// The API occasionally returns rides that are already out of reach
	// once walk time is applied, so evict again before dropping
	// connections that start with a walk or an ignored line.
	cc = cc.EvictUnreachable(now).EvictDisallowedStart()

	if err := cache.Save(cachePath, cc); err != nil {
		log.Printf("Failed to save cached connections: %v", err)
	}

	all := cc.AllConnections()
	if args.show < len(all) {
		all = all[:args.show]
	}
	for _, wc := range all {
		fmt.Println(display.Render(wc.Connection, wc.WalkToStart, now))
	}
	return nil
}

func main() {
	internal.InitLogging()

	configPath := flag.String("config", "", "use a different configuration file")
	show := flag.Int("n", 10, "number of connections to show")
	fresh := flag.Bool("fresh", false, "get fresh connections, bypassing the cache")
	dumpCache := flag.Bool("dump-cache", false, "show contents of the cache and exit")
	startTime := flag.String("start-time", "", "start at the given RFC3339 time instead of now")
	flag.Parse()

	now := time.Now()
	if *startTime != "" {
		parsed, err := time.Parse(time.RFC3339, *startTime)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -start-time: %v\n", err)
			os.Exit(1)
		}
		now = parsed
	}

	args := arguments{
		configPath: *configPath,
		show:       *show,
		fresh:      *fresh,
		dumpCache:  *dumpCache,
		startTime:  now,
	}
	if err := run(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
