package validate_test

import (
	"testing"

	"tradepost/internal/validate"
)

func TestEmail(t *testing.T) {
	good := []string{"alice@example.com", "a.b+tag@sub.example.org", " jane@example.com "}
	for _, s := range good {
		if _, ok := validate.Email(s); !ok {
			t.Errorf("Email(%q) = false, want true", s)
		}
	}
	bad := []string{"", "not-an-email", "a@b", "<script>@x.com", "a@@example.com"}
	for _, s := range bad {
		if _, ok := validate.Email(s); ok {
			t.Errorf("Email(%q) = true, want false", s)
		}
	}
}

func TestQ(t *testing.T) {
	if q, ok := validate.Q("  "); !ok || q != "" {
		t.Errorf("blank query = %q,%v, want empty-and-ok", q, ok)
	}
	if _, ok := validate.Q("wireless headphones"); !ok {
		t.Error("plain keyword rejected")
	}
	if _, ok := validate.Q("jane's & co-op"); !ok {
		t.Error("apostrophe/ampersand/hyphen rejected")
	}
	if _, ok := validate.Q("<img src=x>"); ok {
		t.Error("markup accepted")
	}
}

func TestCategory(t *testing.T) {
	if c, ok := validate.Category(""); !ok || c != "All" {
		t.Errorf("empty category = %q,%v, want All", c, ok)
	}
	if _, ok := validate.Category("Home & Living"); !ok {
		t.Error("Home & Living rejected")
	}
	if _, ok := validate.Category("Elec;DROP TABLE"); ok {
		t.Error("semicolon accepted")
	}
}

func TestID(t *testing.T) {
	if n, ok := validate.ID("42"); !ok || n != 42 {
		t.Errorf("ID(42) = %d,%v", n, ok)
	}
	for _, s := range []string{"0", "-3", "abc", ""} {
		if _, ok := validate.ID(s); ok {
			t.Errorf("ID(%q) = true, want false", s)
		}
	}
}

func TestPageAndPageSize(t *testing.T) {
	if got := validate.Page("3"); got != 3 {
		t.Errorf("Page(3) = %d", got)
	}
	for _, s := range []string{"", "0", "-1", "x"} {
		if got := validate.Page(s); got != 1 {
			t.Errorf("Page(%q) = %d, want 1", s, got)
		}
	}
	if got := validate.PageSize("24", 12); got != 24 {
		t.Errorf("PageSize(24) = %d", got)
	}
	if got := validate.PageSize("", 12); got != 12 {
		t.Errorf("PageSize empty = %d, want default 12", got)
	}
	if got := validate.PageSize("5000", 12); got != 100 {
		t.Errorf("PageSize(5000) = %d, want cap 100", got)
	}
}

func TestRating(t *testing.T) {
	if got := validate.Rating("4.5"); got != 4.5 {
		t.Errorf("Rating(4.5) = %v", got)
	}
	if got := validate.Rating("-1"); got != 0 {
		t.Errorf("Rating(-1) = %v, want 0", got)
	}
	if got := validate.Rating("9"); got != 5 {
		t.Errorf("Rating(9) = %v, want 5", got)
	}
	if got := validate.Rating("lots"); got != 0 {
		t.Errorf("Rating(lots) = %v, want 0", got)
	}
}

func TestPassword(t *testing.T) {
	if !validate.Password("Passw0rd!") {
		t.Error("policy-conforming password rejected")
	}
	bad := []string{"short1!", "alllowercase1!", "ALLUPPERCASE1!", "NoDigits!!", "NoSymbols11", "WayTooLongPassword123456!"}
	for _, s := range bad {
		if validate.Password(s) {
			t.Errorf("Password(%q) = true, want false", s)
		}
	}
}
