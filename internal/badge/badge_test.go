package badge

import "testing"

func TestDepartmentBadges(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range Departments {
		b := d.Badge()
		if b.Color == "muted" {
			t.Fatalf("department %q fell through to the fallback", d)
		}
		if seen[b.Label] {
			t.Fatalf("duplicate label %q", b.Label)
		}
		seen[b.Label] = true
	}
	if got := Department("law").Badge(); got.Label != "law" || got.Color != "muted" {
		t.Fatalf("unexpected fallback %+v", got)
	}
}

func TestEventTypeFallback(t *testing.T) {
	if EventType("party").Badge() != EventOther.Badge() {
		t.Fatalf("unknown event types should render as other")
	}
	if EventSports.Badge().Label != "Sports" {
		t.Fatalf("unexpected sports label")
	}
}

func TestCommunityIconFallback(t *testing.T) {
	if got := CommunityIcon("").Badge().Icon; got != "building-2" {
		t.Fatalf("empty icon = %q", got)
	}
	if got := IconTech.Badge().Icon; got != "code" {
		t.Fatalf("tech icon = %q", got)
	}
}
