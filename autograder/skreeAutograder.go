package autograder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oslfdg/skree/translator"
	"github.com/oslfdg/skree/util"
)

// Grade translates every test program and compares its HexaLang lines with
// the expected listing. Nothing is written; call Save on the result.
func Grade(conf *Config, tr *translator.Translator) *GradescopeOutput {
	gso := CreateGradescopeOutput()
	clean := true

	for _, tc := range conf.TestCases {
		name := tc.Name
		if name == "" {
			name = fmt.Sprintf("Test %d", tc.Number)
		}
		test := CreateTestCase(name, tc.Points, tc.Visibility)

		programPath := filepath.Join(conf.StudentCodeDir, tc.Program)
		b, e := os.ReadFile(programPath)
		if e != nil {
			clean = false
			test.OutputPrintLn("Could not read " + tc.Program + ": " + e.Error())
			test.SetStatus(false)
			gso.AddTest(test, 0)
			continue
		}

		res := tr.Translate(string(b))
		if res.HasProblems() {
			clean = false
		}
		for _, diag := range res.Diagnostics {
			test.OutputPrintLn(fmt.Sprintf("%s:%d:%d: %s", tc.Program, diag.Range.Start.Line+1, diag.Range.Start.Char, diag.Message))
		}

		passed := compareListing(&test, translator.ParseListing(strings.Join(tc.Expected, "\n")), res.HexLines())
		util.LogF("autograder: %s passed=%v", name, passed)
		test.SetStatus(passed)
		if passed {
			gso.AddTest(test, tc.Points)
		} else {
			gso.AddTest(test, 0)
		}
	}

	if conf.CleanTranslationPoints > 0 {
		test := CreateTestCase("Every glyph translates", conf.CleanTranslationPoints, "visible")
		test.SetStatus(clean)
		if clean {
			gso.AddTest(test, conf.CleanTranslationPoints)
		} else {
			test.OutputPrintLn("At least one program has unrecognized glyphs, unresolved encodings or could not be read")
			gso.AddTest(test, 0)
		}
	}

	return gso
}

func compareListing(test *GradescopeTest, expected, got []string) bool {
	passed := len(expected) == len(got)
	if !passed {
		test.OutputPrintLn(fmt.Sprintf("Expected %d instructions, got %d", len(expected), len(got)))
	}

	for i := 0; i < len(expected) || i < len(got); i++ {
		want, have := "(none)", "(none)"
		if i < len(expected) {
			want = expected[i]
		}
		if i < len(got) {
			have = got[i]
		}
		// catalogs may write opcodes in either case
		if !strings.EqualFold(want, have) {
			passed = false
			test.OutputPrintLn(fmt.Sprintf("Instruction %d: expected %s, got %s", i+1, want, have))
		}
	}

	return passed
}
