package catalog

import (
	"reflect"
	"testing"

	"github.com/matzehuels/fontroute/pkg/errors"
	"github.com/matzehuels/fontroute/pkg/fallback"
)

func TestCanonicalTag(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"arab", "Arab", false},
		{"LATN", "Latn", false},
		{"Hebr", "Hebr", false},
		{"en-us", "en-US", false},
		{"EN", "en", false},
		{" fr ", "fr", false},
		{"zh-hant-tw", "zh-Hant-TW", false},
		{"", "", true},
		{"not a tag!", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CanonicalTag(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CanonicalTag(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidTag) {
					t.Errorf("CanonicalTag(%q) code = %v, want %v", tt.in, errors.GetCode(err), errors.ErrCodeInvalidTag)
				}
				return
			}
			if got != tt.want {
				t.Errorf("CanonicalTag(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// newTestCatalog builds:
//
//	Sans  -Arab-> Naskh -Arab-> Kufi
//	Sans  -Arab-> Kufi
//	Sans  -Hebr-> Hebrew
func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := New()
	mustAddFont(t, c, "Sans", "Latn", "en")
	mustAddFont(t, c, "Naskh", "arab")
	mustAddFont(t, c, "Kufi", "Arab")
	mustAddFont(t, c, "Hebrew", "Hebr")
	mustAddRoute(t, c, "Sans", "Naskh", "Arab")
	mustAddRoute(t, c, "Naskh", "Kufi", "Arab")
	mustAddRoute(t, c, "Sans", "Kufi", "arab")
	mustAddRoute(t, c, "Sans", "Hebrew", "Hebr")
	return c
}

func mustAddFont(t *testing.T, c *Catalog, name string, tags ...string) {
	t.Helper()
	if err := c.AddFont(name, tags...); err != nil {
		t.Fatalf("AddFont(%q) error = %v", name, err)
	}
}

func mustAddRoute(t *testing.T, c *Catalog, from, to, tag string) {
	t.Helper()
	if res, err := c.AddRoute(from, to, tag); err != nil || !res.OK() {
		t.Fatalf("AddRoute(%q, %q, %q) = %v, %v", from, to, tag, res, err)
	}
}

func TestAddFont(t *testing.T) {
	c := New()
	mustAddFont(t, c, "Sans", "Latn", "en-us", "latn")

	f, ok := c.Font("Sans")
	if !ok {
		t.Fatal("Font(Sans) not found")
	}
	if f.ID != 0 {
		t.Errorf("ID = %d, want 0", f.ID)
	}
	if want := []string{"Latn", "en-US"}; !reflect.DeepEqual(f.Tags, want) {
		t.Errorf("Tags = %v, want %v", f.Tags, want)
	}
	if got := c.AttachedTags("Sans"); !reflect.DeepEqual(got, []string{"Latn"}) {
		t.Errorf("AttachedTags() = %v, want [Latn]", got)
	}
	if !c.Graph().HasNode(0) {
		t.Error("graph node 0 not registered")
	}

	tests := []struct {
		name string
		font string
		tags []string
		code errors.Code
	}{
		{"duplicate", "Sans", []string{"Latn"}, errors.ErrCodeInvalidFont},
		{"no tags", "Serif", nil, errors.ErrCodeInvalidInput},
		{"bad tag", "Serif", []string{"Latn", "not a tag!"}, errors.ErrCodeInvalidTag},
		{"empty name", "", []string{"Latn"}, errors.ErrCodeInvalidFont},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.AddFont(tt.font, tt.tags...)
			if !errors.Is(err, tt.code) {
				t.Errorf("AddFont(%q) error = %v, want code %v", tt.font, err, tt.code)
			}
		})
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d after rejected fonts, want 1", c.Len())
	}
}

func TestAddRoute(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		name     string
		from, to string
		tag      string
		want     fallback.Result
		code     errors.Code
	}{
		{"exists", "Sans", "Naskh", "arab", fallback.ResultExists, errors.ErrCodeRouteExists},
		{"cycle", "Kufi", "Sans", "Arab", fallback.ResultNotAllowed, errors.ErrCodeRouteCycle},
		{"self", "Kufi", "Kufi", "Latn", fallback.ResultNotAllowed, errors.ErrCodeRouteCycle},
		{"unknown from", "Mono", "Sans", "Arab", fallback.ResultNotExists, errors.ErrCodeFontNotFound},
		{"unknown to", "Sans", "Mono", "Arab", fallback.ResultNotExists, errors.ErrCodeFontNotFound},
		{"bad tag", "Sans", "Kufi", "!!", fallback.ResultFailed, errors.ErrCodeInvalidTag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.AddRoute(tt.from, tt.to, tt.tag)
			if res != tt.want {
				t.Errorf("AddRoute() = %v, want %v", res, tt.want)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("AddRoute() error = %v, want code %v", err, tt.code)
			}
		})
	}

	// The cycle under Arab is fine under another tag.
	mustAddRoute(t, c, "Kufi", "Sans", "Latn")
}

func TestAddRoute_RejectedTagIsForgotten(t *testing.T) {
	c := newTestCatalog(t)
	before := c.TagNames()

	if res, _ := c.AddRoute("Kufi", "Kufi", "fa"); res != fallback.ResultNotAllowed {
		t.Fatalf("AddRoute() = %v, want not-allowed", res)
	}
	if got := c.TagNames(); !reflect.DeepEqual(got, before) {
		t.Errorf("TagNames() = %v, want %v", got, before)
	}
	if _, ok := c.TagID("fa"); ok {
		t.Error("TagID(fa) known after rejected route")
	}
}

func TestFallbacks(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		name  string
		font  string
		tag   string
		limit int
		want  []string
	}{
		{"all", "Sans", "Arab", 0, []string{"Naskh", "Kufi"}},
		{"limited", "Sans", "arab", 1, []string{"Naskh"}},
		{"limit above count", "Sans", "Arab", 10, []string{"Naskh", "Kufi"}},
		{"other tag", "Sans", "Hebr", 0, []string{"Hebrew"}},
		{"unattached tag", "Naskh", "Hebr", 0, nil},
		{"declared but unrouted", "Sans", "en", 0, nil},
		{"unknown tag", "Sans", "ja", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Fallbacks(tt.font, tt.tag, tt.limit)
			if err != nil {
				t.Fatalf("Fallbacks() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Fallbacks(%q, %q, %d) = %v, want %v", tt.font, tt.tag, tt.limit, got, tt.want)
			}
		})
	}

	if _, err := c.Fallbacks("Mono", "Arab", 0); !errors.Is(err, errors.ErrCodeFontNotFound) {
		t.Errorf("Fallbacks(unknown font) error = %v", err)
	}
	if _, err := c.Fallbacks("Sans", "!!", 0); !errors.Is(err, errors.ErrCodeInvalidTag) {
		t.Errorf("Fallbacks(bad tag) error = %v", err)
	}
}

func TestChain(t *testing.T) {
	c := newTestCatalog(t)
	mustAddFont(t, c, "Ruqaa", "Arab")
	mustAddRoute(t, c, "Kufi", "Ruqaa", "Arab")

	got, err := c.Chain("Sans", "Arab")
	if err != nil {
		t.Fatalf("Chain() error = %v", err)
	}
	if want := []string{"Naskh", "Kufi", "Ruqaa"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Chain() = %v, want %v", got, want)
	}
}

func TestRoutesAndTags(t *testing.T) {
	c := newTestCatalog(t)

	if want := []string{"Latn", "en", "Arab", "Hebr"}; !reflect.DeepEqual(c.TagNames(), want) {
		t.Errorf("TagNames() = %v, want %v", c.TagNames(), want)
	}

	want := []Route{
		{From: "Sans", To: "Naskh", Tag: "Arab"},
		{From: "Sans", To: "Kufi", Tag: "Arab"},
		{From: "Sans", To: "Hebrew", Tag: "Hebr"},
		{From: "Naskh", To: "Kufi", Tag: "Arab"},
	}
	if got := c.Routes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Routes() = %v, want %v", got, want)
	}

	if got := c.AttachedTags("Sans"); !reflect.DeepEqual(got, []string{"Latn", "Arab", "Hebr"}) {
		t.Errorf("AttachedTags(Sans) = %v", got)
	}

	fonts := c.Fonts()
	fonts[0].Tags[0] = "mutated"
	if f, _ := c.Font("Sans"); f.Tags[0] != "Latn" {
		t.Error("Fonts() exposes internal tag slices")
	}
}
