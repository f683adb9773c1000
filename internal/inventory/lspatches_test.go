package inventory

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodePatchListBasic(t *testing.T) {
	lines := strings.Split("1;Desc A\n2;Desc B\n", "\n")

	set, err := Decode(lines, FormatPatchList, "patches.txt")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if set.Len() != 2 {
		t.Fatalf("expected 2 patches, got %d", set.Len())
	}

	p, ok := set.Get(1)
	if !ok || p.Description != "Desc A" {
		t.Errorf("patch 1 = %+v, want description %q", p, "Desc A")
	}
	p, ok = set.Get(2)
	if !ok || p.Description != "Desc B" {
		t.Errorf("patch 2 = %+v, want description %q", p, "Desc B")
	}
	if p.ExtraLines != "" {
		t.Errorf("lspatches record has extra lines %q, want empty", p.ExtraLines)
	}
}

func TestDecodePatchListRealOutput(t *testing.T) {
	output := `35648110;OJVM RELEASE UPDATE: 19.21.0.0.231017 (35648110)
35643107;Database Release Update : 19.21.0.0.231017 (35643107)
29585399;OCW RELEASE UPDATE 19.3.0.0.0 (29585399)

OPatch succeeded.
`

	set, err := Decode(strings.Split(output, "\n"), FormatPatchList, "lspatches.out")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if set.Len() != 3 {
		t.Fatalf("expected 3 patches, got %d", set.Len())
	}
	p, _ := set.Get(35643107)
	if p.Description != "Database Release Update : 19.21.0.0.231017 (35643107)" {
		t.Errorf("patch 35643107 description = %q", p.Description)
	}
	if ids := set.IDs(); ids[0] != 35648110 {
		t.Errorf("insertion order lost: first ID = %d, want 35648110", ids[0])
	}
}

func TestDecodePatchListSkipsNoiseLines(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"OPatch succeeded.",
		"42;real patch",
	}

	set, err := Decode(lines, FormatPatchList, "x")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if set.Len() != 1 || !set.Contains(42) {
		t.Errorf("expected exactly patch 42, got %v", set.IDs())
	}
}

func TestDecodePatchListDescriptionVerbatim(t *testing.T) {
	set, err := Decode([]string{"  7 ; left; right ; end"}, FormatPatchList, "x")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	p, _ := set.Get(7)
	if p.Description != " left; right ; end" {
		t.Errorf("description = %q, want %q (split on first semicolon only, untrimmed)", p.Description, " left; right ; end")
	}
}

func TestDecodePatchListMalformedIDIsFatal(t *testing.T) {
	set, err := Decode([]string{"1;ok", "abc;Bad ID"}, FormatPatchList, "bad.txt")
	if err == nil {
		t.Fatal("expected error for non-numeric patch ID")
	}
	if set != nil {
		t.Errorf("expected no set on fatal parse error, got %v", set.IDs())
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if parseErr.Token != "abc" || parseErr.Source != "bad.txt" {
		t.Errorf("ParseError = %+v, want token %q source %q", parseErr, "abc", "bad.txt")
	}
}

func TestDecodePatchListEmbeddedWhitespaceIDIsFatal(t *testing.T) {
	_, err := Decode([]string{"12 3;split id"}, FormatPatchList, "x")
	if err == nil {
		t.Fatal("expected error for patch ID with embedded whitespace")
	}
}

func TestDecodePatchListDuplicateIDOverwrites(t *testing.T) {
	set, err := Decode([]string{"5;first", "6;other", "5;second"}, FormatPatchList, "x")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	p, _ := set.Get(5)
	if p.Description != "second" {
		t.Errorf("duplicate ID description = %q, want %q", p.Description, "second")
	}
	if ids := set.IDs(); len(ids) != 2 || ids[0] != 5 {
		t.Errorf("duplicate insert changed order: %v", ids)
	}
}
