package utils

import (
	"reflect"
	"testing"
)

func TestSplitUniqueNonEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "preserves order and drops duplicates",
			raw:  "https://b.example, https://a.example,https://b.example",
			want: []string{"https://b.example", "https://a.example"},
		},
		{
			name: "trims whitespace and skips empty entries",
			raw:  " one ,, two , ",
			want: []string{"one", "two"},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitUniqueNonEmpty(tt.raw, ",")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitUniqueNonEmpty(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
