package autograder

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type GradescopeTest struct {
	Name       string `json:"name"`
	MaxScore   int    `json:"max_score"`
	Score      int    `json:"score"`
	Output     string `json:"output"`
	Visibility string `json:"visibility"`
	Status     string `json:"status,omitempty"`
}

type GradescopeOutput struct {
	Tests []GradescopeTest `json:"tests"`
	Score int              `json:"score"`
}

func CreateGradescopeOutput() *GradescopeOutput {
	return &GradescopeOutput{
		Tests: []GradescopeTest{},
	}
}

func (gso *GradescopeOutput) AddTest(test GradescopeTest, score int) {
	test.Score = score
	gso.Tests = append(gso.Tests, test)
	gso.Score += score
}

// Save writes the results json to path, creating its directory.
func (gso *GradescopeOutput) Save(path string) error {
	b, e := json.MarshalIndent(gso, "", "  ")
	if e != nil {
		return e
	}

	if e := os.MkdirAll(filepath.Dir(path), 0755); e != nil {
		return e
	}
	return os.WriteFile(path, b, 0644)
}

func CreateTestCase(name string, maxScore int, visibility string) GradescopeTest {
	if visibility == "" {
		visibility = "visible"
	}
	return GradescopeTest{
		Name:       name,
		MaxScore:   maxScore,
		Visibility: visibility,
	}
}

func (gt *GradescopeTest) SetStatus(success bool) {
	if success {
		gt.Status = "passed"
	} else {
		gt.Status = "failed"
	}
}

func (gt *GradescopeTest) OutputPrintLn(str string) {
	gt.Output += str + "\n"
}
