// Command export writes the test drawings as JSON stroke lists, in the
// input format of cmd/mnistpad.  Run from the module root directory.
package main

import (
	"encoding/json"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/mnistpad"
	"seehuhn.de/go/mnistpad/testcases"
)

const outDir = "testdata/testcases"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := writeCase(filepath.Join(outDir, name+".json"), tc); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
		}
	}
}

func writeCase(fname string, tc testcases.TestCase) error {
	strokes := make([]mnistpad.Stroke, len(tc.Strokes))
	for i, s := range tc.Strokes {
		strokes[i] = mnistpad.Stroke{Mode: mnistpad.Mark, Points: s.Points}
		if s.Mode == testcases.Erase {
			strokes[i].Mode = mnistpad.Erase
		}
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(strokes)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
