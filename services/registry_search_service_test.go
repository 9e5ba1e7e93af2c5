package services

import "testing"

const sampleRegistryHTML = `
<html><body>
<table class="results">
<tr class="event-row"><td><a href="/e/1">Spring Classic</a></td><td>2026-04-12</td><td>Nakuru Showground</td><td>Show Jumping</td></tr>
<tr class="event-row"><td>Coast &amp; Country Derby</td><td>2026-05-03</td><td>Mombasa</td><td>Eventing</td><td>Open</td></tr>
<tr class="event-row"><td></td><td>2026-06-01</td><td>Unknown</td><td>Dressage</td></tr>
<tr><td>Not an event row</td></tr>
</table>
</body></html>`

func TestParseCompetitionRows(t *testing.T) {
	results := parseCompetitionRows(sampleRegistryHTML)

	if len(results) != 2 {
		t.Fatalf("expected 2 parsed events, got %d: %+v", len(results), results)
	}

	first := results[0]
	if first.Name != "Spring Classic" || first.Date != "2026-04-12" || first.Location != "Nakuru Showground" || first.Discipline != "Show Jumping" {
		t.Fatalf("unexpected first result: %+v", first)
	}

	// HTML entities are decoded and extra cells ignored.
	if results[1].Name != "Coast & Country Derby" {
		t.Fatalf("unexpected second result name: %q", results[1].Name)
	}
}

func TestParseCompetitionRowsIsBestEffort(t *testing.T) {
	for _, pageHTML := range []string{"", "<html><body><p>maintenance</p></body></html>", "<<<garbage"} {
		results := parseCompetitionRows(pageHTML)
		if results == nil {
			t.Fatalf("parse must return an empty list, not nil")
		}
		if len(results) != 0 {
			t.Fatalf("expected no results for unparseable page, got %+v", results)
		}
	}
}
