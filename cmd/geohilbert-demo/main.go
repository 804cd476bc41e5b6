// Command geohilbert-demo builds a synthetic global point dataset,
// indexes it with geohilbert, and times a batch of radius queries
// against it.
//
// Usage:
//
//	geohilbert-demo [flags]
//
// Examples:
//
//	geohilbert-demo
//	geohilbert-demo -points 2000000 -order 20 -queries 50000
//	geohilbert-demo -radius 250
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/briarwood-labs/geohilbert"
)

type point struct {
	id  uuid.UUID
	hid uint64
}

func (p point) HID() uint64 { return p.hid }
func (p point) X() int      { return 0 }
func (p point) Y() int      { return 0 }

func main() {
	numPoints := flag.Int("points", 1_000_000, "number of synthetic points to index")
	order := flag.Int("order", 19, "Hilbert curve order")
	numQueries := flag.Int("queries", 100_000, "number of within() queries to run")
	radius := flag.Float64("radius", 100, "query radius, in meters")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	codec, err := geohilbert.NewCodec(*order, nil)
	if err != nil {
		log.Fatalf("geohilbert: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	log.Printf("generating %d random points at order %d", *numPoints, *order)
	items := make([]point, *numPoints)
	for i := range items {
		lon := rng.Float64()*360 - 180
		lat := rng.Float64()*180 - 90
		coord, err := geohilbert.NewCoordinate(lon, lat)
		if err != nil {
			log.Fatalf("geohilbert: %v", err)
		}
		items[i] = point{id: uuid.New(), hid: codec.Encode(coord)}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].hid < items[j].hid })

	idx := geohilbert.Build[point](items, codec, geohilbert.WGS84Geodesy{})
	log.Printf("built index with %d points", idx.Len())

	start := time.Now()
	var totalHits int
	for i := 0; i < *numQueries; i++ {
		lon := rng.Float64()*360 - 180
		lat := rng.Float64()*180 - 90
		coord, err := geohilbert.NewCoordinate(lon, lat)
		if err != nil {
			log.Fatalf("geohilbert: %v", err)
		}
		hits, err := idx.Within(coord, *radius)
		if err != nil {
			log.Fatalf("geohilbert: %v", err)
		}
		totalHits += len(hits)
	}
	elapsed := time.Since(start)

	fmt.Printf("%d queries in %s (%.2f us/query), %d total hits\n",
		*numQueries, elapsed, float64(elapsed.Microseconds())/float64(*numQueries), totalHits)
}
