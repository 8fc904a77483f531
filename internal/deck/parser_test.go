package deck

import (
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ParsedLine
		ok    bool
	}{
		{
			name:  "quantity with x",
			input: "4x Lightning Bolt",
			want:  ParsedLine{Quantity: 4, Name: "Lightning Bolt"},
			ok:    true,
		},
		{
			name:  "quantity without x",
			input: "4 Lightning Bolt",
			want:  ParsedLine{Quantity: 4, Name: "Lightning Bolt"},
			ok:    true,
		},
		{
			name:  "bare name defaults to one copy",
			input: "Lightning Bolt",
			want:  ParsedLine{Quantity: 1, Name: "Lightning Bolt"},
			ok:    true,
		},
		{
			name:  "sideboard prefix",
			input: "SB: 2 Duress",
			want:  ParsedLine{Quantity: 2, Name: "Duress", Sideboard: true},
			ok:    true,
		},
		{
			name:  "arena export suffix",
			input: "4 Lightning Bolt (M21) 123",
			want:  ParsedLine{Quantity: 4, Name: "Lightning Bolt", SetCode: "M21"},
			ok:    true,
		},
		{
			name:  "trailing comment stripped",
			input: "4 Tarmogoyf # best creature",
			want:  ParsedLine{Quantity: 4, Name: "Tarmogoyf"},
			ok:    true,
		},
		{
			name:  "comment-only line dropped",
			input: "# lands below",
			ok:    false,
		},
		{
			name:  "blank line dropped",
			input: "   ",
			ok:    false,
		},
		{
			name:  "section header dropped",
			input: "Sideboard",
			ok:    false,
		},
		{
			name:  "name starting with x survives",
			input: "Xantid Swarm",
			want:  ParsedLine{Quantity: 1, Name: "Xantid Swarm"},
			ok:    true,
		},
		{
			name:  "double digit quantity",
			input: "20 Forest",
			want:  ParsedLine{Quantity: 20, Name: "Forest"},
			ok:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseLine(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got.Quantity != tt.want.Quantity {
				t.Errorf("quantity = %d, want %d", got.Quantity, tt.want.Quantity)
			}
			if got.Name != tt.want.Name {
				t.Errorf("name = %q, want %q", got.Name, tt.want.Name)
			}
			if got.SetCode != tt.want.SetCode {
				t.Errorf("set code = %q, want %q", got.SetCode, tt.want.SetCode)
			}
			if got.Sideboard != tt.want.Sideboard {
				t.Errorf("sideboard = %v, want %v", got.Sideboard, tt.want.Sideboard)
			}
			if got.Raw != tt.input {
				t.Errorf("raw = %q, want original line", got.Raw)
			}
		})
	}
}

func TestParse(t *testing.T) {
	input := `Deck
4 Lightning Bolt (M21) 123
# a comment
3x Shock

SB: 2 Duress
20 Mountain`

	lines := Parse(input)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %+v", len(lines), lines)
	}

	if lines[0].Name != "Lightning Bolt" || lines[0].SetCode != "M21" {
		t.Errorf("line 0 = %+v", lines[0])
	}
	if lines[1].Name != "Shock" || lines[1].Quantity != 3 {
		t.Errorf("line 1 = %+v", lines[1])
	}
	if !lines[2].Sideboard {
		t.Errorf("line 2 should be sideboard: %+v", lines[2])
	}
	if lines[3].Quantity != 20 {
		t.Errorf("line 3 = %+v", lines[3])
	}
}
