package helpers

import (
	"reflect"
	"testing"
)

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Visa Processing, Hotel Accommodation,  Transportation", []string{"Visa Processing", "Hotel Accommodation", "Transportation"}},
		{" a ,, b ,", []string{"a", "b"}},
		{"", nil},
		{" , ", nil},
	}
	for _, tt := range tests {
		if got := SplitCSV(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitCSV(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "name", "title"); got != "name" {
		t.Fatalf("FirstNonEmpty = %q, want name", got)
	}
	if got := FirstNonEmpty("", ""); got != "" {
		t.Fatalf("FirstNonEmpty = %q, want empty", got)
	}
}

func TestPointerHelpers(t *testing.T) {
	if got := ValueOr(Ptr(3), 5); got != 3 {
		t.Fatalf("ValueOr(Ptr(3), 5) = %d", got)
	}
	if got := ValueOr[int](nil, 5); got != 5 {
		t.Fatalf("ValueOr(nil, 5) = %d", got)
	}
	if got := TrimmedValue(Ptr("  Safar Air ")); got != "Safar Air" {
		t.Fatalf("TrimmedValue = %q", got)
	}
	if got := TrimmedValue(nil); got != "" {
		t.Fatalf("TrimmedValue(nil) = %q", got)
	}
}
