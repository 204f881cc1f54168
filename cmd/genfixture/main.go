// Command genfixture generates a deterministic NeoWs feed JSON fixture and
// runs it through the actual domain packages so the printed stats can be used
// to update test assertions.
//
// Usage:
//
//	go run ./cmd/genfixture -out internal/adapter/nasa/testdata/feed.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/couchcryptid/neo-impact-mapper/internal/domain"
	"github.com/jonboulle/clockwork"
)

var baseDate = time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)

// fixtureObject is the seed data for one generated record.
type fixtureObject struct {
	name        string
	diameterMin float64 // km
	diameterMax float64 // km
	velocity    float64 // km/s
	missKM      float64
	hazardous   bool
	dayOffset   int
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the feed JSON fixture")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	// Fix the clock so GeneratedAt-style fields stay reproducible when the
	// fixture is re-run through the pipeline.
	domain.SetClock(clockwork.NewFakeClockAt(baseDate.Add(6 * time.Hour)))
	defer domain.SetClock(nil)

	objects := []fixtureObject{
		{name: "(2025 AB1)", diameterMin: 0.21, diameterMax: 0.47, velocity: 18.733, missKM: 7480213.6, hazardous: true},
		{name: "(2019 QQ)", diameterMin: 0.04, diameterMax: 0.09, velocity: 7.02, missKM: 491022.1},
		{name: "465633 (2009 JR5)", diameterMin: 0.32, diameterMax: 0.72, velocity: 23.91, missKM: 45179000.4, hazardous: true, dayOffset: 1},
		{name: "(2024 XT3)", diameterMin: 0.011, diameterMax: 0.025, velocity: 12.118, missKM: 1204551.9, dayOffset: 1},
		{name: "(2016 RL20)", diameterMin: 0.13, diameterMax: 0.29, velocity: 9.447, missKM: 28413776.0},
	}

	feed := buildFeed(objects)

	if err := writeJSON(*out, feed); err != nil {
		return fmt.Errorf("writing feed fixture: %w", err)
	}
	log.Printf("wrote feed fixture: %s (%d objects)", *out, feed.ElementCount)

	printStats(feed)
	return nil
}

func buildFeed(objects []fixtureObject) domain.RawFeed {
	buckets := map[string][]domain.RawNEORecord{}
	for _, o := range objects {
		o := o
		date := baseDate.AddDate(0, 0, o.dayOffset).Format("2006-01-02")
		vel := strconv.FormatFloat(o.velocity, 'f', -1, 64)
		miss := strconv.FormatFloat(o.missKM, 'f', -1, 64)

		buckets[date] = append(buckets[date], domain.RawNEORecord{
			Name:      o.name,
			Hazardous: &o.hazardous,
			EstimatedDiameter: &domain.RawEstimatedDiameter{
				Kilometers: &domain.RawDiameterRange{Min: &o.diameterMin, Max: &o.diameterMax},
			},
			CloseApproachData: []domain.RawCloseApproach{{
				RelativeVelocity: &domain.RawRelativeVelocity{KilometersPerSecond: &vel},
				MissDistance:     &domain.RawMissDistance{Kilometers: &miss},
			}},
		})
	}
	return domain.RawFeed{ElementCount: len(objects), NearEarthObjects: buckets}
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

// printStats runs the fixture through the real normalize/rank/effects stages
// and prints the values test assertions depend on.
func printStats(feed domain.RawFeed) {
	model := domain.DefaultModelConfig()

	records := domain.FlattenFeed(feed)
	neos := make([]domain.NearEarthObject, 0, len(records))
	skipped := 0
	for _, rec := range records {
		neo, err := domain.NormalizeRecord(rec)
		if err != nil {
			skipped++
			continue
		}
		neos = append(neos, neo)
	}
	ranked := domain.RankBySize(neos, model.TopN)

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Flattened: %d, normalized: %d, skipped: %d, ranked: %d\n",
		len(records), len(neos), skipped, len(ranked))

	for rank, neo := range ranked {
		effects := model.Physics.Effects(neo.DiameterKM, neo.VelocityKMPS)
		site := model.Sites.ForRank(rank)
		fmt.Printf("%d. %s\n", rank+1, neo.Name)
		fmt.Printf("   Diameter: %.3f km, Velocity: %.2f km/s, Hazardous: %t\n",
			neo.DiameterKM, neo.VelocityKMPS, neo.Hazardous)
		fmt.Printf("   Energy: %.1f Mt, Crater: %.2f km, Severe: %.1f km\n",
			effects.EnergyMegatons, effects.CraterDiameterKM, effects.SevereDamageRadiusKM)
		fmt.Printf("   Site: (%g, %g)\n", site.Lat, site.Lon)
	}
}
