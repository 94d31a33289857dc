package pkg

import (
	"slices"
	"testing"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		candidates []string
		limit      int
		want       []string
	}{
		{
			name:       "single typo ranks first",
			query:      "eg0",
			candidates: []string{"target", "ego", "egg_truck"},
			want:       []string{"ego"},
		},
		{
			name:       "case insensitive",
			query:      "speed",
			candidates: []string{"Speed", "Seed", "Time"},
			want:       []string{"Speed", "Seed"},
		},
		{
			name:       "subsequence kept beyond edit cutoff",
			query:      "InitSpd",
			candidates: []string{"InitialSpeed", "Other"},
			want:       []string{"InitialSpeed"},
		},
		{
			name:       "limit applied",
			query:      "car",
			candidates: []string{"car1", "car2", "car3", "car4"},
			limit:      2,
			want:       []string{"car1", "car2"},
		},
		{
			name:       "default limit",
			query:      "car",
			candidates: []string{"car1", "car2", "car3", "car4"},
			want:       []string{"car1", "car2", "car3"},
		},
		{
			name:       "nothing close",
			query:      "ego",
			candidates: []string{"pedestrian"},
			want:       []string{},
		},
		{
			name:  "no candidates",
			query: "ego",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.query, tt.candidates, tt.limit)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Suggest(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		candidates []string
		limit      int
		want       []string
	}{
		{
			name:       "distant names kept",
			query:      "zzzzzzzz",
			candidates: []string{"truck", "car"},
			want:       []string{"car", "truck"},
		},
		{
			name:       "closest first",
			query:      "cra",
			candidates: []string{"pedestrian", "car", "truck"},
			want:       []string{"car", "truck", "pedestrian"},
		},
		{
			name:       "limit applied",
			query:      "x",
			candidates: []string{"a", "b", "c", "d"},
			limit:      2,
			want:       []string{"a", "b"},
		},
		{
			name:       "query excluded",
			query:      "car",
			candidates: []string{"car"},
			want:       []string{},
		},
		{
			name:  "no candidates",
			query: "car",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Nearest(tt.query, tt.candidates, tt.limit)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Nearest(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
