package services

import "testing"

func TestCheckNameRejectsNonLetters(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"Ann", true},
		{"Mary Jane", true},
		{"", false},
		{"Ann3", false},
		{"O'Brien", false},
		{"Ann-Lee", false},
	}

	for _, tc := range cases {
		var errs ValidationError
		checkName(&errs, "first", tc.value)
		if got := errs.orNil() == nil; got != tc.ok {
			t.Errorf("checkName(%q): ok = %v, want %v", tc.value, got, tc.ok)
		}
	}
}

func TestCheckTeamNameLength(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"Ducks", true},
		{"Abc", true},
		{"Ab", false},
		{"The Flying Wonder Duc", false}, // 21 chars
		{"Get Plastered", true},
	}

	for _, tc := range cases {
		var errs ValidationError
		checkTeamName(&errs, tc.value)
		if got := errs.orNil() == nil; got != tc.ok {
			t.Errorf("checkTeamName(%q): ok = %v, want %v", tc.value, got, tc.ok)
		}
	}
}

func TestCheckPassword(t *testing.T) {
	cases := []struct {
		value   string
		ok      bool
		missing string
	}{
		{"Ab3@def", true, ""},
		{"Password123!", true, ""},
		{"Ab@cd", false, "length"},
		{"Abcdefghijk@l", false, "length"},
		{"ab3@def", false, "uppercase"},
		{"AB3@DEF", false, "lowercase"},
		{"Ab3cdef", false, "special"},
		{"Ab3@défghijk", true, ""}, // 12 runes, more bytes
		{"Aé@éb", false, "length"}, // 5 runes either way
	}

	for _, tc := range cases {
		var errs ValidationError
		checkPassword(&errs, tc.value)
		if got := errs.orNil() == nil; got != tc.ok {
			t.Errorf("checkPassword(%q): ok = %v, want %v (%s)", tc.value, got, tc.ok, tc.missing)
		}
	}
}

func TestCheckEmail(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"ann@x.com", true},
		{"admin@email.com", true},
		{"", false},
		{"not-an-email", false},
		{"a b@x.com", false},
	}

	for _, tc := range cases {
		var errs ValidationError
		checkEmail(&errs, tc.value)
		if got := errs.orNil() == nil; got != tc.ok {
			t.Errorf("checkEmail(%q): ok = %v, want %v", tc.value, got, tc.ok)
		}
	}
}

func TestParseDate(t *testing.T) {
	var errs ValidationError
	good := "1986-08-12"
	parsed := parseDate(&errs, "dob", &good)
	if errs.orNil() != nil || parsed == nil {
		t.Fatalf("parseDate(%q) failed: %v", good, errs.orNil())
	}
	if parsed.Year() != 1986 || int(parsed.Month()) != 8 || parsed.Day() != 12 {
		t.Errorf("parseDate(%q) = %v", good, parsed)
	}

	var errs2 ValidationError
	bad := "12/08/1986"
	if parseDate(&errs2, "dob", &bad); errs2.orNil() == nil {
		t.Errorf("parseDate(%q) unexpectedly succeeded", bad)
	}

	var errs3 ValidationError
	if got := parseDate(&errs3, "dob", nil); got != nil || errs3.orNil() != nil {
		t.Errorf("parseDate(nil) should be a no-op")
	}
}

func TestValidationErrorListsFields(t *testing.T) {
	var errs ValidationError
	checkName(&errs, "first", "Ann3")
	checkName(&errs, "last", "")
	err := errs.orNil()
	if err == nil {
		t.Fatal("expected a validation error")
	}
	ve := err.(*ValidationError)
	if _, ok := ve.Fields["first"]; !ok {
		t.Error("missing offending field 'first'")
	}
	if _, ok := ve.Fields["last"]; !ok {
		t.Error("missing offending field 'last'")
	}
}
