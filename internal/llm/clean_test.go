package llm

import "testing"

func TestCleanResponse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n[\"x\"]\n```", `["x"]`},
		{"whitespace", "  {\"a\":1}  ", `{"a":1}`},
		{"bom", "\uFEFF{\"a\":1}", `{"a":1}`},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanResponse(tc.in); got != tc.want {
				t.Fatalf("CleanResponse(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFirstJSONObject(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"bare", `{"a":1}`, `{"a":1}`, true},
		{"leading prose", `Here you go: {"a":{"b":2}} thanks`, `{"a":{"b":2}}`, true},
		{"brace in string", `{"a":"}"} tail`, `{"a":"}"}`, true},
		{"escaped quote", `{"a":"\""}`, `{"a":"\""}`, true},
		{"unbalanced", `{"a":1`, "", false},
		{"none", "no json here", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FirstJSONObject(tc.in)
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("FirstJSONObject(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestFirstJSONArray(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"bare", `["Python","SQL"]`, `["Python","SQL"]`, true},
		{"prose", `Skills: ["Go", "Docker"].`, `["Go", "Docker"]`, true},
		{"nested", `[["a"],["b"]]`, `[["a"],["b"]]`, true},
		{"bracket in string", `["a]b"]`, `["a]b"]`, true},
		{"none", "nothing", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FirstJSONArray(tc.in)
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("FirstJSONArray(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}
