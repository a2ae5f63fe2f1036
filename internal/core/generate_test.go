package core

import (
	"strings"
	"testing"
	"testing/quick"
	"time"

	"github.com/google/go-cmp/cmp"
)

type displayName struct{ first, last string }

func (d displayName) String() string { return d.last + ", " + d.first }

func TestGenerateCSV(t *testing.T) {
	dob := time.Date(2010, time.May, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		data    []Record
		headers []string
		want    string
	}{
		{
			name:    "header only",
			data:    nil,
			headers: []string{"a", "b"},
			want:    "a,b",
		},
		{
			name:    "plain values",
			data:    []Record{{"a": "1", "b": "2"}, {"a": "3", "b": "4"}},
			headers: []string{"a", "b"},
			want:    "a,b\n1,2\n3,4",
		},
		{
			name:    "escaping",
			data:    []Record{{"name": "Doe, John", "note": `say "hi"`, "addr": "line1\nline2"}},
			headers: []string{"name", "note", "addr"},
			want:    "name,note,addr\n\"Doe, John\",\"say \"\"hi\"\"\",\"line1\nline2\"",
		},
		{
			name:    "missing and nil become empty",
			data:    []Record{{"a": nil}},
			headers: []string{"a", "b"},
			want:    "a,b\n,",
		},
		{
			name: "dotted paths",
			data: []Record{{
				"profile": Record{"firstName": "Ann", "address": map[string]any{"city": "Paris"}},
				"meta":    map[string]string{"tag": "x"},
			}},
			headers: []string{"profile.firstName", "profile.address.city", "meta.tag", "profile.missing.deep"},
			want:    "profile.firstName,profile.address.city,meta.tag,profile.missing.deep\nAnn,Paris,x,",
		},
		{
			name:    "exact key with dot wins",
			data:    []Record{{"a.b": "flat", "a": Record{"b": "nested"}}},
			headers: []string{"a.b"},
			want:    "a.b\nflat",
		},
		{
			name: "typed values",
			data: []Record{{
				"n": 42, "f": 2.5, "ok": true, "dob": dob, "dobp": &dob,
				"tags": []string{"x", "y"}, "who": displayName{"Ann", "Lee"},
			}},
			headers: []string{"n", "f", "ok", "dob", "dobp", "tags", "who"},
			want:    "n,f,ok,dob,dobp,tags,who\n42,2.5,true,2010-05-15,2010-05-15,\"x,y\",\"Lee, Ann\"",
		},
		{
			name:    "decoded JSON arrays join like string slices",
			data:    []Record{{"subjects": []any{"Math", "Art"}, "mixed": []any{"a", float64(2), nil}}},
			headers: []string{"subjects", "mixed"},
			want:    "subjects,mixed\n\"Math,Art\",\"a,2,\"",
		},
		{
			name:    "nil time pointer",
			data:    []Record{{"d": (*time.Time)(nil)}},
			headers: []string{"d"},
			want:    "d\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateCSV(tt.data, tt.headers); got != tt.want {
				t.Errorf("GenerateCSV() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestEscapeField(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"", ""},
		{"a,b", `"a,b"`},
		{`a"b`, `"a""b"`},
		{"a\nb", "\"a\nb\""},
		{"a\rb", "\"a\rb\""},
	}

	for _, tt := range tests {
		if got := EscapeField(tt.in); got != tt.want {
			t.Errorf("EscapeField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateRows(t *testing.T) {
	rows := []Row{{"firstname": "Ann", "email": "ann@example.com"}}
	got := GenerateRows(rows, []string{"firstName", "email", "phone"})
	want := "firstName,email,phone\nAnn,ann@example.com,"
	if got != want {
		t.Errorf("GenerateRows() = %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	headers := []string{"Name", "Note", "Address"}
	data := []Record{
		{"Name": "Doe, John", "Note": `He said "hello"`, "Address": "12 Main St\nApt 4"},
		{"Name": "Plain", "Note": "", "Address": "a,b,\"c\""},
		{"Name": `""`, "Note": ",", "Address": "x\r\ny"},
	}

	parsed := ParseCSV(GenerateCSV(data, headers))
	if len(parsed.Errors) > 0 {
		t.Fatalf("parse errors: %v", parsed.Errors)
	}

	want := make([]Row, len(data))
	for i, rec := range data {
		want[i] = Row{}
		for _, h := range headers {
			want[i][strings.ToLower(h)] = rec[h].(string)
		}
	}
	if diff := cmp.Diff(want, parsed.Data); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// roundTripAlphabet is biased toward the characters that need escaping.
const roundTripAlphabet = `ab ,"` + "\n\r" + `x1é`

// toCell maps arbitrary bytes onto roundTripAlphabet. Parsing trims
// values, so surrounding whitespace is removed up front.
func toCell(raw []byte) string {
	alphabet := []rune(roundTripAlphabet)
	var b strings.Builder
	for _, c := range raw {
		b.WriteRune(alphabet[int(c)%len(alphabet)])
	}
	return strings.TrimSpace(b.String())
}

func TestRoundTripProperty(t *testing.T) {
	headers := []string{"first", "second", "third"}

	property := func(cells [][3][]byte) bool {
		if len(cells) == 0 {
			return true
		}

		data := make([]Record, len(cells))
		want := make([]Row, len(cells))
		for i, c := range cells {
			data[i] = Record{}
			want[i] = Row{}
			for j, h := range headers {
				v := toCell(c[j])
				data[i][h] = v
				want[i][h] = v
			}
		}

		parsed := ParseCSV(GenerateCSV(data, headers))
		if len(parsed.Errors) > 0 {
			t.Logf("parse errors: %v", parsed.Errors)
			return false
		}
		if diff := cmp.Diff(want, parsed.Data); diff != "" {
			t.Logf("mismatch (-want +got):\n%s", diff)
			return false
		}
		return true
	}

	if err := quick.Check(property, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}
