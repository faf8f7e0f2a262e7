package spatialmine

import (
	"reflect"
	"testing"
)

func TestFilterSuffixesDropsBelowMinSupItems(t *testing.T) {
	suffixes := []flatSeq{
		{"x", sentinel, "y", sentinel},
		{"y", sentinel},
	}
	got := filterSuffixes(suffixes, 2, map[Item]struct{}{})
	want := []flatSeq{
		{"y", sentinel},
		{"y", sentinel},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFilterSuffixesKeepsMustKeepRegardlessOfSupport(t *testing.T) {
	suffixes := []flatSeq{
		{"x", sentinel},
	}
	got := filterSuffixes(suffixes, 5, map[Item]struct{}{"x": {}})
	want := []flatSeq{
		{"x", sentinel},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
