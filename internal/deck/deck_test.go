package deck

import (
	"strings"
	"testing"
)

func TestDeck_AddRemove(t *testing.T) {
	d := New()

	d.Add("Lightning Bolt", 4)
	d.Add("Lightning Bolt", 1)
	d.Add("Forest", 20)

	if got := d.Quantity("Lightning Bolt"); got != 5 {
		t.Errorf("Quantity(Lightning Bolt) = %d, want 5", got)
	}
	if got := d.Total(); got != 25 {
		t.Errorf("Total() = %d, want 25", got)
	}

	d.Remove("Lightning Bolt", 2)
	if got := d.Quantity("Lightning Bolt"); got != 3 {
		t.Errorf("after remove, quantity = %d, want 3", got)
	}

	// Removing past zero deletes the card entirely.
	d.Remove("Lightning Bolt", 10)
	if got := d.Quantity("Lightning Bolt"); got != 0 {
		t.Errorf("quantity after over-remove = %d, want 0", got)
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
}

func TestDeck_RemoveAbsentIsNoop(t *testing.T) {
	d := New()
	d.Remove("Ghost Card", 3)

	if d.Len() != 0 || d.Total() != 0 {
		t.Error("removing an absent card changed the deck")
	}
}

func TestDeck_InvalidQuantitiesIgnored(t *testing.T) {
	d := New()
	d.Add("Forest", 0)
	d.Add("Forest", -2)

	if d.Len() != 0 {
		t.Error("non-positive quantities were added")
	}
}

func TestDeck_LastChanged(t *testing.T) {
	d := New()

	d.Add("Forest", 1)
	if name, action := d.LastChanged(); name != "Forest" || action != "add" {
		t.Errorf("LastChanged() = %q, %q", name, action)
	}

	d.Remove("Forest", 1)
	if name, action := d.LastChanged(); name != "Forest" || action != "remove" {
		t.Errorf("LastChanged() = %q, %q", name, action)
	}
}

func TestDeck_EntriesSortedCaseInsensitive(t *testing.T) {
	d := New()
	d.Add("mountain", 4)
	d.Add("Ancient Den", 4)
	d.Add("Boros Garrison", 2)

	entries := d.Entries()
	want := []string{"Ancient Den", "Boros Garrison", "mountain"}
	for i, e := range entries {
		if e.Name != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Name, want[i])
		}
	}
}

func TestDeck_Export(t *testing.T) {
	d := New()
	d.Add("Tarmogoyf", 4)
	d.Add("Forest", 20)

	export := d.Export()
	lines := strings.Split(strings.TrimSpace(export), "\n")

	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), export)
	}
	if lines[0] != "20x Forest" || lines[1] != "4x Tarmogoyf" {
		t.Errorf("export = %q", export)
	}
}
