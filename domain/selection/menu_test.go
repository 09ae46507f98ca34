package selection

import "testing"

func TestBuildMenuOrderAndGating(t *testing.T) {
	cases := []struct {
		name     string
		avail    Availability
		hasValue bool
		want     []Action
	}{
		{
			name:  "baseline",
			avail: Availability{},
			want:  []Action{ActionGallery, ActionFiles},
		},
		{
			name:  "camera available",
			avail: Availability{Camera: true},
			want:  []Action{ActionGallery, ActionCamera, ActionFiles},
		},
		{
			name:  "clipboard available",
			avail: Availability{Clipboard: true},
			want:  []Action{ActionGallery, ActionFiles, ActionClipboard},
		},
		{
			name:     "everything",
			avail:    Availability{Camera: true, Clipboard: true},
			hasValue: true,
			want:     []Action{ActionGallery, ActionCamera, ActionFiles, ActionClipboard, ActionClear},
		},
		{
			name:     "value only",
			avail:    Availability{},
			hasValue: true,
			want:     []Action{ActionGallery, ActionFiles, ActionClear},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := BuildMenu(tc.avail, tc.hasValue)
			if len(items) != len(tc.want) {
				t.Fatalf("got %d items, want %d", len(items), len(tc.want))
			}
			for i, it := range items {
				if it.Action != tc.want[i] {
					t.Fatalf("position %d: got %q, want %q", i, it.Action.String(), tc.want[i].String())
				}
				if it.Label == "" {
					t.Fatalf("empty label for %q", it.Action.String())
				}
			}
		})
	}
}

func TestBuildMenuLabelsAreDistinct(t *testing.T) {
	items := BuildMenu(Availability{Camera: true, Clipboard: true}, true)
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it.Label] {
			t.Fatalf("duplicate label %q", it.Label)
		}
		seen[it.Label] = true
	}
}
