package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sandeepkv93/shoplist/internal/model"
)

func seedItems() []model.Item {
	return []model.Item{
		{ID: "1", Name: "apples"},
		{ID: "2", Name: "oranges"},
		{ID: "3", Name: "milk", Checked: true},
		{ID: "4", Name: "bread"},
	}
}

func strPtr(s string) *string { return &s }

func TestProject(t *testing.T) {
	cases := []struct {
		name   string
		hide   bool
		search *string
		want   []string
	}{
		{name: "identity", want: []string{"apples", "oranges", "milk", "bread"}},
		{name: "hide completed", hide: true, want: []string{"apples", "oranges", "bread"}},
		{name: "substring", search: strPtr("a"), want: []string{"apples", "oranges", "bread"}},
		{name: "case sensitive", search: strPtr("A"), want: []string{}},
		{name: "empty term", search: strPtr(""), want: []string{"apples", "oranges", "milk", "bread"}},
		{name: "both filters", hide: true, search: strPtr("il"), want: []string{}},
		{name: "search hits checked", search: strPtr("mil"), want: []string{"milk"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := namesOf(Project(seedItems(), tc.hide, tc.search))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Project mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProjectIdentityReturnsEqualSequence(t *testing.T) {
	items := seedItems()
	if diff := cmp.Diff(items, Project(items, false, nil)); diff != "" {
		t.Fatalf("identity projection changed items (-want +got):\n%s", diff)
	}
}

func TestProjectEmptyEqualsNil(t *testing.T) {
	items := seedItems()
	for _, hide := range []bool{false, true} {
		if diff := cmp.Diff(Project(items, hide, nil), Project(items, hide, strPtr(""))); diff != "" {
			t.Fatalf("hide=%v: empty term differs from nil (-nil +empty):\n%s", hide, diff)
		}
	}
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	items := seedItems()
	before := model.CloneItems(items)
	out := Project(items, true, strPtr("a"))
	if len(out) > 0 {
		out[0].Name = "changed"
	}
	if diff := cmp.Diff(before, items); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}

func TestProjectEmptyInput(t *testing.T) {
	got := Project(nil, true, strPtr("x"))
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
