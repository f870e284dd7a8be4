package common

import (
	"reflect"
	"testing"
)

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare hex regrouped",
			raw:  "a1b2c3d4e5f60718a9b0c1d2e3f40516",
			want: "a1b2c3d4-e5f6-0718-a9b0-c1d2e3f40516",
		},
		{
			name: "already canonical",
			raw:  "a1b2c3d4-e5f6-0718-a9b0-c1d2e3f40516",
			want: "a1b2c3d4-e5f6-0718-a9b0-c1d2e3f40516",
		},
		{
			name: "spaces stripped",
			raw:  "a1b2c3d4 e5f60718 a9b0c1d2 e3f40516",
			want: "a1b2c3d4-e5f6-0718-a9b0-c1d2e3f40516",
		},
		{
			name: "too short unchanged",
			raw:  "a1b2c3",
			want: "a1b2c3",
		},
		{
			name: "non-hex unchanged",
			raw:  "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",
			want: "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",
		},
		{
			name: "empty unchanged",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeID(tt.raw); got != tt.want {
				t.Errorf("NormalizeID(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "single id",
			value: "a1b2c3d4e5f60718a9b0c1d2e3f40516",
			want:  []string{"a1b2c3d4-e5f6-0718-a9b0-c1d2e3f40516"},
		},
		{
			name:  "multiple with whitespace",
			value: " id-1 , id-2 ,id-3",
			want:  []string{"id-1", "id-2", "id-3"},
		},
		{
			name:  "empty entries dropped",
			value: "id-1,,  ,id-2,",
			want:  []string{"id-1", "id-2"},
		},
		{
			name:  "empty string",
			value: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseIDList(tt.value); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseIDList(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
