package intent

import (
	"encoding/json"
	"testing"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		raw  string
		want Sort
	}{
		{"latest", SortLatest},
		{"", SortLatest},
		{"newest", SortLatest},
		{"popular", SortPopular},
		{" Views ", SortPopular},
		{"popularity", SortPopular},
		{"comments", SortComments},
		{"COMMENT_COUNT", SortComments},
	}

	for _, tt := range tests {
		if got := ParseSort(tt.raw); got != tt.want {
			t.Errorf("ParseSort(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestSearch_Limit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, DefaultLimit},
		{-2, DefaultLimit},
		{1, 1},
		{MaxLimit, MaxLimit},
		{MaxLimit + 1, MaxLimit},
	}

	for _, tt := range tests {
		if got := Search("", "", SortLatest, tt.limit).Limit; got != tt.want {
			t.Errorf("Search(limit=%d).Limit = %d, want %d", tt.limit, got, tt.want)
		}
	}
}

func TestIntent_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      Intent
		want    string
		wantErr bool
	}{
		{
			name: "search without category",
			in:   Search("", "", SortLatest, 3),
			want: `{"type":"search","keyword":"","sort":"latest","limit":3}`,
		},
		{
			name: "search with category",
			in:   Search("React", "frontend", SortComments, 5),
			want: `{"type":"search","keyword":"React","category":"frontend","sort":"comments","limit":5}`,
		},
		{
			name: "general",
			in:   General("안녕하세요"),
			want: `{"type":"general","message":"안녕하세요"}`,
		},
		{
			name:    "zero value",
			in:      Intent{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("json.Marshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("json.Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}
