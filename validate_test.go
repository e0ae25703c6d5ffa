package cubeview

import (
	"strings"
	"testing"
)

func TestValidateSolvedIsClean(t *testing.T) {
	if v := ValidateStructure([]byte(Solved().String())); len(v) != 0 {
		t.Errorf("solved sequence should have no violations, got %v", v)
	}
}

func TestValidateLength(t *testing.T) {
	short := strings.Repeat("U", 53)
	violations := ValidateStructure([]byte(short))
	if len(violations) != 1 {
		t.Fatalf("got %d violations, want exactly 1", len(violations))
	}
	v := violations[0]
	if v.Kind != ViolationLength || v.Length != 53 {
		t.Errorf("violation = %+v, want length violation naming 53", v)
	}
}

func TestValidateColorCounts(t *testing.T) {
	// Swap one U sticker to R: U occurs 8 times, R occurs 10.
	seq := []byte(Solved().String())
	seq[0] = 'R'

	violations := ValidateStructure(seq)
	if len(violations) != 2 {
		t.Fatalf("got %d violations, want 2: %v", len(violations), violations)
	}
	bySymbol := map[byte]int{}
	for _, v := range violations {
		if v.Kind != ViolationCount {
			t.Errorf("violation kind = %v, want ViolationCount", v.Kind)
		}
		bySymbol[v.Symbol] = v.Count
	}
	if bySymbol['U'] != 8 || bySymbol['R'] != 10 {
		t.Errorf("counts = %v, want U:8 R:10", bySymbol)
	}
}

func TestValidateBadSymbols(t *testing.T) {
	seq := []byte(Solved().String())
	seq[3] = 'x'
	seq[40] = '?'

	violations := ValidateStructure(seq)
	var symbolViolations []Violation
	for _, v := range violations {
		if v.Kind == ViolationSymbol {
			symbolViolations = append(symbolViolations, v)
		}
	}
	if len(symbolViolations) != 2 {
		t.Fatalf("got %d symbol violations, want 2: %v", len(symbolViolations), violations)
	}
	if symbolViolations[0].Index != 3 || symbolViolations[0].Symbol != 'x' {
		t.Errorf("first symbol violation = %+v", symbolViolations[0])
	}
}

func TestValidateSymbolReportCap(t *testing.T) {
	garbage := []byte(strings.Repeat("z", 54))
	count := 0
	for _, v := range ValidateStructure(garbage) {
		if v.Kind == ViolationSymbol {
			count++
		}
	}
	if count > maxSymbolViolations {
		t.Errorf("symbol violations = %d, want at most %d", count, maxSymbolViolations)
	}
}

func TestValidatePreservedByMoves(t *testing.T) {
	s := ApplyMoves(Solved(), TPerm)
	if !IsStructurallyValid([]byte(s.String())) {
		t.Error("move application must preserve structural validity")
	}
}

func TestViolationMessages(t *testing.T) {
	v := Violation{Kind: ViolationCount, Symbol: 'U', Count: 8}
	if !strings.Contains(v.String(), "8") || !strings.Contains(v.String(), "U") {
		t.Errorf("count violation message should name symbol and count: %q", v.String())
	}
}
