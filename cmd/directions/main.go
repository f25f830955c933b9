package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"route-directions-service/internal/adapters/catalog"
	"route-directions-service/internal/adapters/repositories"
	"route-directions-service/internal/directions"
	"route-directions-service/internal/domain"
	"route-directions-service/internal/ports"
	"route-directions-service/internal/services"
	"strconv"
	"strings"

	"github.com/kr/pretty"
)

// directions prints turn-by-turn directions for a list of catalog segments.
//
//	directions [flags] 1 2 3 7r
//
// A trailing "r" travels the segment in reverse.
func main() {
	formatter := flag.String("formatter", "driving", "line formatter: "+strings.Join(directions.FormatterNames(), ", "))
	heading := flag.Float64("heading", math.NaN(), "initial heading in degrees (default: route start heading)")
	normalize := flag.Bool("normalize", false, "wrap turn angles into (-180, 180] before classifying")
	seed := flag.String("seed", "", "JSON seed file (default: built-in example segments)")
	list := flag.Bool("list", false, "list catalog segments and exit")
	debug := flag.Bool("debug", false, "dump the route's features")
	flag.Parse()

	log.SetFlags(0)

	cat, err := openCatalog(*seed)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	if *list {
		if err := printCatalog(ctx, cat); err != nil {
			log.Fatal(err)
		}
		return
	}

	refs, err := parseRefs(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	req := services.PlanDirectionsRequest{
		Segments:  refs,
		Formatter: *formatter,
		Normalize: *normalize,
	}
	if !math.IsNaN(*heading) {
		if *heading < 0 || *heading >= 360 {
			log.Fatalf("heading must be in [0, 360): %v", *heading)
		}
		req.InitialHeading = heading
	}

	res, err := services.PlanDirections(ctx, req, cat)
	if err != nil {
		log.Fatal(err)
	}

	if *debug {
		pretty.Fprintf(os.Stderr, "%# v\n", describe(res.Route))
	}

	fmt.Print(res.Directions)
}

func openCatalog(seed string) (ports.SegmentCatalog, error) {
	if seed == "" {
		return catalog.NewExampleCatalog(), nil
	}
	entries, err := repositories.LoadSeedFile(seed)
	if err != nil {
		return nil, err
	}
	return catalog.NewMemoryCatalog(entries)
}

func parseRefs(args []string) ([]services.SegmentRef, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("usage: directions [flags] SEGMENT_ID[r] ...")
	}

	refs := make([]services.SegmentRef, 0, len(args))
	for _, a := range args {
		raw, reversed := strings.CutSuffix(strings.ToLower(a), "r")
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parse segment %q: %w", a, err)
		}
		refs = append(refs, services.SegmentRef{SegmentID: id, Reversed: reversed})
	}
	return refs, nil
}

func printCatalog(ctx context.Context, cat ports.SegmentCatalog) error {
	entries, err := cat.ListSegments(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%3d  %s\n", e.SegmentID, e.Segment)
	}
	return nil
}

type featureView struct {
	Name         string
	LengthKm     float64
	StartHeading float64
	EndHeading   float64
	Segments     []string
}

func describe(r domain.Route) []featureView {
	out := make([]featureView, 0, r.FeatureCount())
	for f := range r.AllFeatures() {
		v := featureView{
			Name:         f.Name(),
			LengthKm:     f.Length(),
			StartHeading: f.StartHeading(),
			EndHeading:   f.EndHeading(),
		}
		for _, s := range f.Segments() {
			v.Segments = append(v.Segments, s.String())
		}
		out = append(out, v)
	}
	return out
}
