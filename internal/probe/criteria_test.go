package probe

import (
	"testing"

	"github.com/probectl/probectl/internal/errors"
)

func TestCriteria_Matches_DefaultOK(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{199, false},
		{200, true},
		{204, true},
		{299, true},
		{300, false},
		{301, false},
		{404, false},
		{500, false},
	}

	c := DefaultOK()
	for _, tt := range tests {
		if got := c.Matches(tt.status); got != tt.want {
			t.Errorf("DefaultOK().Matches(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}

	// The zero value behaves like DefaultOK.
	var zero Criteria
	if !zero.Matches(200) || zero.Matches(404) {
		t.Error("zero Criteria should accept 200 and reject 404")
	}
}

func TestCriteria_Matches_Codes(t *testing.T) {
	c := Codes(200, 404)

	tests := []struct {
		status int
		want   bool
	}{
		{200, true},
		{404, true},
		{201, false},
		{403, false},
		{500, false},
	}
	for _, tt := range tests {
		if got := c.Matches(tt.status); got != tt.want {
			t.Errorf("Codes(200,404).Matches(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}

	// An empty set accepts nothing.
	empty := Codes()
	for _, status := range []int{200, 204, 404, 500} {
		if empty.Matches(status) {
			t.Errorf("Codes().Matches(%d) = true, want false", status)
		}
	}
}

func TestCriteria_Matches_ServiceUp(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{199, false},
		{200, true},
		{301, true},
		{404, true},
		{499, true},
		{500, false},
		{502, false},
	}

	c := ServiceUp()
	for _, tt := range tests {
		if got := c.Matches(tt.status); got != tt.want {
			t.Errorf("ServiceUp().Matches(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestParseCodes(t *testing.T) {
	tests := []struct {
		name    string
		list    string
		wantErr bool
		accepts []int
		rejects []int
	}{
		{
			name:    "two codes",
			list:    "200,404",
			accepts: []int{200, 404},
			rejects: []int{201, 500},
		},
		{
			name:    "single code",
			list:    "418",
			accepts: []int{418},
			rejects: []int{200},
		},
		{
			name:    "spaces trimmed",
			list:    " 200 , 404 ",
			accepts: []int{200, 404},
		},
		{name: "empty list", list: "", wantErr: true},
		{name: "blank list", list: "   ", wantErr: true},
		{name: "empty entry", list: "200,,404", wantErr: true},
		{name: "trailing comma", list: "200,", wantErr: true},
		{name: "not a number", list: "abc", wantErr: true},
		{name: "mixed garbage", list: "200,4o4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCodes(tt.list)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCodes(%q) = nil error, want error", tt.list)
				}
				if code := errors.GetExitCode(err); code != errors.ExitValidation {
					t.Errorf("exit code = %d, want %d", code, errors.ExitValidation)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCodes(%q) error: %v", tt.list, err)
			}
			for _, status := range tt.accepts {
				if !c.Matches(status) {
					t.Errorf("criteria from %q should accept %d", tt.list, status)
				}
			}
			for _, status := range tt.rejects {
				if c.Matches(status) {
					t.Errorf("criteria from %q should reject %d", tt.list, status)
				}
			}
		})
	}
}

func TestCriteria_FollowRedirects(t *testing.T) {
	if !DefaultOK().followRedirects() {
		t.Error("DefaultOK should follow redirects")
	}
	if !Codes(200).followRedirects() {
		t.Error("Codes should follow redirects")
	}
	if ServiceUp().followRedirects() {
		t.Error("ServiceUp must not follow redirects")
	}
}

func TestCriteria_String(t *testing.T) {
	tests := []struct {
		criteria Criteria
		want     string
	}{
		{DefaultOK(), "status 2xx"},
		{Codes(200, 404), "status in {200,404}"},
		{ServiceUp(), "status in [200,499]"},
	}
	for _, tt := range tests {
		if got := tt.criteria.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
