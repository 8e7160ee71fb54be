package normalize

import (
	"reflect"
	"testing"
)

func TestEmail(t *testing.T) {
	in := "  John.DOE@Example.COM  "
	want := "john.doe@example.com"
	got := Email(in)
	if got != want {
		t.Fatalf("Normalize.Email(%q) = %q, want %q", in, got, want)
	}
}

func TestHashtags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"no tags here", nil},
		{"#exams are near #TE_comp", []string{"exams", "TE_comp"}},
		{"fest #cultural, #cultural!", []string{"cultural", "cultural"}},
		{"# alone", nil},
	}
	for _, c := range cases {
		if got := Hashtags(c.in); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("Hashtags(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestContent(t *testing.T) {
	if got := Content("  \n hi there \t"); got != "hi there" {
		t.Fatalf("Content trimmed to %q", got)
	}
}
