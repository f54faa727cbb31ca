package keyword

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "whitespace only", raw: "   ", want: ""},
		{name: "plain keyword untouched", raw: "React", want: "React"},
		{name: "sort hint only", raw: "최신글", want: ""},
		{name: "sort hint with request verb", raw: "최신글 보여줘", want: ""},
		{name: "filler suffix", raw: "React 관련 게시글", want: "React"},
		{name: "attached filler", raw: "React관련", want: "React"},
		{name: "rewrite korean term", raw: "리액트", want: "React"},
		{name: "rewrite with fillers", raw: "리액트 관련 글 찾아줘", want: "React"},
		{name: "standalone post word dropped", raw: "React 관련 글", want: "React"},
		{name: "post word only", raw: "글", want: ""},
		{name: "post word inside a term kept", raw: "구글 검색", want: "구글"},
		{name: "post word attached to a term kept", raw: "글쓰기 팁", want: "글쓰기 팁"},
		{name: "longer rewrite wins", raw: "자바스크립트", want: "JavaScript"},
		{name: "shorter rewrite still applies", raw: "자바 스프링", want: "Java 스프링"},
		{name: "substring rewrite keeps remainder", raw: "노드모듈", want: "Node.js모듈"},
		{name: "longer filler removed whole", raw: "인기글", want: ""},
		{name: "case sensitive fillers", raw: "POST", want: "POST"},
		{name: "trims and collapses", raw: "  도커   에 대한  ", want: "Docker"},
		{name: "multiple terms", raw: "넥스트 타입스크립트", want: "Next.js TypeScript"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"리액트 관련 게시글", "최신글 보여줘", "몽고디비 검색", "Docker"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestFillersByLength(t *testing.T) {
	if len(fillersByLength) != len(Fillers) {
		t.Fatalf("fillersByLength has %d entries, want %d", len(fillersByLength), len(Fillers))
	}
	for i := 1; i < len(fillersByLength); i++ {
		if len(fillersByLength[i-1]) < len(fillersByLength[i]) {
			t.Errorf("fillersByLength not sorted at %d: %q before %q", i, fillersByLength[i-1], fillersByLength[i])
		}
	}
}

func TestRewrites_LongerTermsFirst(t *testing.T) {
	for i, later := range Rewrites {
		for _, earlier := range Rewrites[i+1:] {
			if strings.Contains(earlier.From, later.From) {
				t.Errorf("rewrite %q shadows longer term %q; move it after", later.From, earlier.From)
			}
		}
	}
}
