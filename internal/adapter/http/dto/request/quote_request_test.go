package request

import (
	"errors"
	"testing"
)

func TestAssignRequest_ResolveHandlerID(t *testing.T) {
	r := AssignRequest{HandlerID: "  h-2  "}
	if got := r.ResolveHandlerID(); got != "h-2" {
		t.Fatalf("expected trimmed id, got %q", got)
	}
}

func TestLinePricingRequest_ResolveField(t *testing.T) {
	cases := []struct {
		in   string
		want string
		err  error
	}{
		{"vendor_cost", "vendor_cost", nil},
		{"customer_price", "customer_price", nil},
		{" Vendor_Cost ", "vendor_cost", nil},
		{"quantity", "", ErrInvalidPriceField},
		{"", "", ErrInvalidPriceField},
	}
	for _, tc := range cases {
		got, err := LinePricingRequest{Field: tc.in}.ResolveField()
		if !errors.Is(err, tc.err) {
			t.Fatalf("ResolveField(%q): expected err %v, got %v", tc.in, tc.err, err)
		}
		if got != tc.want {
			t.Fatalf("ResolveField(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
