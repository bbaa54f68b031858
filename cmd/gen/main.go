package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/maps"

	"onebrc/pkg"
)

type Station struct {
	Target int
	Stat   pkg.StationStat
}

const (
	SPREAD = 123

	// uniform mode bounds, in tenths
	COLDEST = -999
	HOTTEST = 999
)

func (s Station) MinMax() (int, int) {
	return s.Target - SPREAD, s.Target + SPREAD
}

func (s Station) NaiveValue(rng *rand.Rand) int {
	return s.Target + (rng.Intn(2*SPREAD+1) - SPREAD)
}

func (s Station) BiasedValue(rng *rand.Rand, sign, error int) int {
	rv := 61 + rng.Intn(61)
	return s.Target + sign*min(rv, sign*error*int(s.Stat.Count))
}

func (s *Station) Mean() int {
	if s.Stat.Count == 0 {
		return s.Target
	}
	return int(s.Stat.Sum / int64(s.Stat.Count))
}

func (s *Station) AddValue(v int) {
	if s.Stat.Count == 0 {
		s.Stat = pkg.NewStationStat(int32(v))
		return
	}
	s.Stat.Add(int32(v))
}

type StationMap = map[string]*Station

type Generator struct {
	rng      *rand.Rand
	stations StationMap
	cities   []string
	lines    []string
	bar      *progressbar.ProgressBar
}

func (g *Generator) emit(city string, v int) {
	g.stations[city].AddValue(v)
	g.lines = append(g.lines, city+";"+pkg.PrintIndec(int64(v)))
	g.bar.Add(1)
}

func main() {
	tTotal := time.Now()
	flagInput := flag.String("input", "weather_stations.csv", "station list: name;temperature, '#' comments")
	flagFile := flag.String("file", "measurements.txt", "1brc file")
	flagCheck := flag.String("check", "measurements.chk", "expected summary of the 1brc file")

	flagMode := flag.String("mode", "calibrated", "calibrated | uniform")
	flagN := flag.Int64("n", 1_000_000, "rows")
	flagBulk := flag.Int("bulk", 90, "% bulk (calibrated)")
	flagSeed := flag.Int64("seed", 0, "rng seed")
	flag.Parse()

	if *flagN <= 0 {
		log.Fatalf("rows must be positive, got %d", *flagN)
	}

	log.Printf("reading input file: '%s'", *flagInput)
	stationMap, err := readStations(*flagInput)
	if err != nil {
		log.Fatal(err)
	}

	g := &Generator{
		rng:      rand.New(rand.NewSource(*flagSeed)),
		stations: stationMap,
		cities:   maps.Keys(stationMap),
		lines:    make([]string, 0, *flagN),
		bar:      progressbar.Default(*flagN, "generating"),
	}
	sort.Strings(g.cities)
	log.Printf("%d stations, %s rows, mode %s", len(g.cities), humanize.Comma(*flagN), *flagMode)

	switch *flagMode {
	case "calibrated":
		g.calibrated(int(*flagN), *flagBulk)
	case "uniform":
		g.uniform(int(*flagN))
	default:
		log.Fatalf("unknown mode '%s'", *flagMode)
	}
	g.bar.Finish()

	if err := writeCheck(*flagCheck, stationMap); err != nil {
		log.Fatal(err)
	}

	log.Print("randomizing lines")
	n, err := writeLines(*flagFile, g.lines, derange(g.rng, len(g.lines)))
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Test data build complete. wrote %s in %s lines, took %v",
		humanize.Bytes(uint64(n)), humanize.Comma(int64(len(g.lines))), time.Since(tTotal))
}

func readStations(file string) (StationMap, error) {
	mf, err := pkg.MMapFile(file)
	if err != nil {
		return nil, err
	}
	defer mf.Close()

	csvReader := csv.NewReader(bytes.NewReader(mf.Bytes()))
	csvReader.Comma = ';'
	csvReader.Comment = '#'
	csvReader.FieldsPerRecord = 2
	entries, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read all: %w", err)
	}

	stationMap := make(StationMap, len(entries))
	for _, entry := range entries {
		name := entry[0]
		value, err := strconv.ParseFloat(entry[1], 64)
		if err != nil {
			return nil, fmt.Errorf("station '%s': %w", name, err)
		}
		target := clampTarget(int(value * 10))
		if v, ok := stationMap[name]; ok {
			v.Target = (target + v.Target) / 2
			continue
		}

		stationMap[name] = &Station{Target: target}
	}
	if len(stationMap) == 0 {
		return nil, fmt.Errorf("no stations in '%s'", file)
	}
	return stationMap, nil
}

// clampTarget keeps target±SPREAD inside the [-99.9, 99.9] record format.
func clampTarget(t int) int {
	return max(COLDEST+SPREAD, min(HOTTEST-SPREAD, t))
}

func (g *Generator) uniform(n int) {
	for range n {
		city := g.cities[g.rng.Intn(len(g.cities))]
		g.emit(city, COLDEST+g.rng.Intn(HOTTEST-COLDEST+1))
	}
}

func (g *Generator) calibrated(n, bulk int) {
	// initial 3
	for _, city := range g.cities {
		if len(g.lines)+3 > n {
			break
		}
		station := g.stations[city]
		min, max := station.MinMax()
		for _, v := range []int{min, station.Target, max} {
			g.emit(city, v)
		}
	}

	avgStationCount := n / len(g.cities)
	bulkSize := (bulk*avgStationCount)/100 - 3
	log.Printf("generating initial bulk: bulk=%d avgCount=%d", bulkSize, avgStationCount)
	for _, city := range g.cities {
		station := g.stations[city]
		for i := 0; i < bulkSize && len(g.lines) < n; i++ {
			g.emit(city, station.NaiveValue(g.rng))
		}
	}

	// pull each mean back onto its target
	for _, city := range g.cities {
		station := g.stations[city]
		if station.Stat.Count == 0 {
			continue
		}
		for avgError := station.Target - station.Mean(); avgError != 0 && len(g.lines) < n; avgError = station.Target - station.Mean() {
			sign := 1
			if avgError < 0 {
				sign = -1
			}
			g.emit(city, station.BiasedValue(g.rng, sign, avgError))
		}
	}

	for len(g.lines) < n {
		city := g.cities[g.rng.Intn(len(g.cities))]
		g.emit(city, g.stations[city].Target)
	}
}

func writeCheck(file string, stationMap StationMap) error {
	log.Printf("creating check file '%s'", file)
	totals := pkg.NewTotals()
	for city, station := range stationMap {
		if station.Stat.Count == 0 {
			continue
		}
		totals.Insert([]byte(city), &station.Stat)
	}

	checkFile, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("open check file '%s': %w", file, err)
	}
	if err := pkg.WriteSummary(checkFile, totals, pkg.FormatOptions{}); err != nil {
		checkFile.Close()
		return fmt.Errorf("write check file '%s': %w", file, err)
	}
	return checkFile.Close()
}

func writeLines(file string, lines []string, order []int) (int, error) {
	log.Printf("creating output file '%s'", file)
	outputFile, err := os.Create(file)
	if err != nil {
		return 0, fmt.Errorf("open output file '%s': %w", file, err)
	}
	defer outputFile.Close()

	var n int
	w := bufio.NewWriterSize(outputFile, 4*1024*1024)
	for _, i := range order {
		m, _ := w.WriteString(lines[i])
		w.WriteByte('\n')
		n += m + 1
	}
	if err := w.Flush(); err != nil {
		return n, fmt.Errorf("write output file: %w", err)
	}
	return n, outputFile.Close()
}

func derange(rng *rand.Rand, n int) []int {
	arr := make([]int, n)
	for i := range n {
		arr[i] = i
	}
	if n < 2 {
		return arr
	}

	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		for j == i {
			j = rng.Intn(i + 1)
		}
		arr[i], arr[j] = arr[j], arr[i]
	}

	for i, val := range arr {
		if i == val {
			if i == 0 {
				arr[i], arr[i+1] = arr[i+1], arr[i]
			} else {
				arr[i], arr[i-1] = arr[i-1], arr[i]
			}
		}
	}

	return arr
}
