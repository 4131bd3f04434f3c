// Command export writes the named direction sets to JSON for external
// reference generators. Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"github.com/golang/geo/r3"

	"seehuhn.de/go/lambert/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string       `json:"name"`
	Dimension  int          `json:"dimension"`
	Resolution float64      `json:"resolution"`
	MaxCoord   float64      `json:"max_coord"`
	Size       int          `json:"size"`
	Directions [][3]float64 `json:"directions"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	return jsonTestCase{
		Name:       category + "_" + tc.Name,
		Dimension:  tc.Dimension,
		Resolution: tc.Resolution,
		MaxCoord:   tc.MaxCoord(),
		Size:       tc.Size,
		Directions: directionsToJSON(tc.Directions),
	}
}

func directionsToJSON(dirs []r3.Vector) [][3]float64 {
	res := make([][3]float64, len(dirs))
	for i, d := range dirs {
		res[i] = [3]float64{d.X, d.Y, d.Z}
	}
	return res
}
