package autograder

import (
	"encoding/json"
	"fmt"
	"os"
)

type TestCase struct {
	Number     int      `json:"number"`
	Name       string   `json:"name"`
	Visibility string   `json:"visibility"`
	Points     int      `json:"points"`
	Program    string   `json:"program"`  // glyph program, relative to StudentCodeDir
	Expected   []string `json:"expected"` // HexaLang lines, comments allowed
}

type Config struct {
	AssignmentName         string     `json:"assignmentName"`
	CatalogPath            string     `json:"catalogPath"` // empty selects the built in catalog
	StudentCodeDir         string     `json:"studentCodeDir"`
	ResultsPath            string     `json:"resultsPath"`
	RegisterQueue          []uint8    `json:"registerQueue"`
	TestCases              []TestCase `json:"testCases"`
	CleanTranslationPoints int        `json:"cleanTranslationPoints"`
}

const DefaultResultsPath = "results/results.json"

func LoadConfig(path string) (*Config, error) {
	b, e := os.ReadFile(path)
	if e != nil {
		return nil, fmt.Errorf("could not read autograder config: %w", e)
	}

	conf := new(Config)
	e = json.Unmarshal(b, conf)
	if e != nil {
		return nil, fmt.Errorf("error unmarshalling %s: %w", path, e)
	}

	if conf.ResultsPath == "" {
		conf.ResultsPath = DefaultResultsPath
	}
	if len(conf.TestCases) == 0 {
		return nil, fmt.Errorf("%s defines no test cases", path)
	}
	for i, tc := range conf.TestCases {
		if tc.Program == "" {
			return nil, fmt.Errorf("%s: test case %d (%s) names no program", path, i, tc.Name)
		}
	}

	return conf, nil
}
