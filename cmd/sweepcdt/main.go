package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/sweepcdt"
	"github.com/osuushi/sweepcdt/dbg"
	"github.com/osuushi/sweepcdt/internal"
)

// Demo of triangulation. Input on stdin should be newline separated points in
// the form "x y", with each polygon separated by an extra newline. Triangles
// are printed one per line.
//
// Polygons should be simple. Either winding is fine. Holes are not supported.
var (
	app        = kingpin.New("sweepcdt", "Constrained Delaunay triangulation of polygons read from stdin.")
	configPath = app.Flag("config", "YAML file with triangulation settings.").ExistingFile()
	alpha      = app.Flag("alpha", "Base expansion factor.").Float64()
	epsilon    = app.Flag("epsilon", "Shear epsilon.").Float64()
	threshold  = app.Flag("threshold", "Insertion sort threshold.").Int()
	check      = app.Flag("check", "Validate the mesh after every swept point.").Bool()
	pngPath    = app.Flag("png", "Write a drawing of the first polygon's full mesh to this file.").String()
	scale      = app.Flag("scale", "Pixels per unit in the drawing.").Default("50").Float64()
	debug      = app.Flag("debug", "Print every triangle, including the ones on the synthetic base.").Bool()
	dump       = app.Flag("dump", "Dump the triangles' full structure.").Bool()
	verbose    = app.Flag("verbose", "Log sweep progress to stderr.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		sweepcdt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	config, err := loadConfig()
	app.FatalIfError(err, "config")

	polygons, err := readPolygons(os.Stdin)
	app.FatalIfError(err, "input")
	fmt.Printf("Read %d polygons\n", len(polygons))
	if len(polygons) == 0 {
		return
	}

	if *debug {
		for i, points := range polygons {
			triangles, err := sweepcdt.TriangulateDebug(config, points)
			app.FatalIfError(err, "polygon %d", i)
			printTriangles(i, triangles)
		}
	} else {
		results, err := sweepcdt.TriangulateAll(config, polygons...)
		app.FatalIfError(err, "triangulate")
		for i, triangles := range results {
			printTriangles(i, triangles)
		}
	}

	if *pngPath != "" {
		app.FatalIfError(savePNG(polygons[0], config, *pngPath, *scale), "png")
		fmt.Println(aurora.Cyan("Wrote " + *pngPath))
	}
}

// Draw the full mesh of one polygon, base triangles included.
func savePNG(points []*sweepcdt.Point, config sweepcdt.Config, path string, scale float64) (err error) {
	defer func() {
		if recoveredErr := internal.HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	cdt := internal.New(points, config)
	cdt.Triangulate()
	return cdt.SavePNG(path, scale)
}

func loadConfig() (sweepcdt.Config, error) {
	config := sweepcdt.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return config, err
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "parsing %s", *configPath)
		}
	}

	// Flags win over the file
	if *alpha != 0 {
		config.BaseExpansion = *alpha
	}
	if *epsilon != 0 {
		config.ShearEpsilon = *epsilon
	}
	if *threshold != 0 {
		config.InsertionSortThreshold = *threshold
	}
	if *check {
		config.CheckInvariants = true
	}
	return config, config.Validate()
}

func printTriangles(polygon int, triangles []*sweepcdt.Triangle) {
	fmt.Println(aurora.Green(fmt.Sprintf("Polygon %d: %d triangles", polygon, len(triangles))))
	if *dump {
		fmt.Print(dbg.Dump(triangles))
		return
	}
	for _, t := range triangles {
		line := t.String()
		if t.IsBase() {
			line = aurora.Red(line).String()
		}
		fmt.Println(line)
	}
}

func readPolygons(in io.Reader) ([][]*sweepcdt.Point, error) {
	polygons := [][]*sweepcdt.Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []*sweepcdt.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = []*sweepcdt.Point{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePoint(line string) (*sweepcdt.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return nil, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, err
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, err
	}
	return &sweepcdt.Point{X: x, Y: y}, nil
}
