package note

import (
	"reflect"
	"testing"
)

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{"Beta", "alpha", "beta", " ", "ALPHA"})
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeTags = %v, want %v", got, want)
	}

	if got := NormalizeTags(nil); got != nil {
		t.Errorf("NormalizeTags(nil) = %v, want nil", got)
	}
}

func TestApplyTagUpdate(t *testing.T) {
	tests := []struct {
		name    string
		current []string
		update  string
		want    []string
	}{
		{"add", []string{"bar"}, "+foo", []string{"bar", "foo"}},
		{"remove", []string{"bar", "foo"}, "~bar", []string{"foo"}},
		{"remove last", []string{"bar"}, "~bar", nil},
		{"replace", []string{"bar"}, "x,y", []string{"x", "y"}},
		{"empty keeps current", []string{"bar"}, "", []string{"bar"}},
		{"add dedupes", []string{"bar"}, "+bar,foo", []string{"bar", "foo"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ApplyTagUpdate(tc.current, tc.update)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ApplyTagUpdate(%v, %q) = %v, want %v",
					tc.current, tc.update, got, tc.want)
			}
		})
	}
}
