package practiced

import "testing"

func TestGradeAnswer(t *testing.T) {
	tests := []struct {
		name        string
		submitted   string
		expected    string
		wantCorrect bool
		wantAlmost  bool
	}{
		{"exact", "perro", "perro", true, false},
		{"case insensitive", "PERRO", "perro", true, false},
		{"surrounding space", "  perro ", "perro", true, false},
		{"one substitution", "perno", "perro", false, true},
		{"one deletion", "pero", "perro", false, true},
		{"one insertion", "perrro", "perro", false, true},
		{"two edits", "pera", "perro", false, false},
		{"unrelated", "gato", "perro", false, false},
		{"empty never almost", "", "a", false, false},
		{"whitespace only", "   ", "perro", false, false},
	}

	for _, tt := range tests {
		correct, almost := gradeAnswer(tt.submitted, tt.expected)
		if correct != tt.wantCorrect || almost != tt.wantAlmost {
			t.Errorf("%s: gradeAnswer(%q, %q) = (%v, %v), want (%v, %v)",
				tt.name, tt.submitted, tt.expected, correct, almost, tt.wantCorrect, tt.wantAlmost)
		}
	}
}

func TestEditDistanceIsOne(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"abc", "abc", false},
		{"abc", "abd", true},
		{"abc", "ab", true},
		{"ab", "abc", true},
		{"abc", "a", false},
		{"", "a", true},
		{"", "ab", false},
		{"niño", "nino", true},
		{"abcd", "badc", false},
	}

	for _, tt := range tests {
		if got := editDistanceIsOne(tt.a, tt.b); got != tt.want {
			t.Errorf("editDistanceIsOne(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
