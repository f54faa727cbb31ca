// Package keyword cleans search keywords extracted from chat messages.
package keyword

import (
	"slices"
	"sort"
	"strings"
)

// Rewrite maps a term as users type it to the token the board indexes.
type Rewrite struct {
	From string
	To   string
}

// Fillers are phrases that carry no search meaning ("related to", "post",
// "search for", "show me", sort hints). Matching is literal and case-sensitive.
var Fillers = []string{
	"관련된",
	"관련",
	"에 대한",
	"에 관한",
	"게시글",
	"게시물",
	"포스트",
	"검색해줘",
	"검색해 줘",
	"검색",
	"찾아줘",
	"찾아 줘",
	"보여줘",
	"보여 줘",
	"알려줘",
	"알려 줘",
	"최신글",
	"최신순",
	"최신",
	"최근",
	"인기글",
	"인기순",
	"인기",
	"댓글 많은",
	"댓글순",
}

// TokenFillers are dropped only as whole tokens; as substrings they occur
// inside real words ("글" in "구글").
var TokenFillers = []string{"글", "글들", "글좀"}

// Rewrites is consulted in order; a longer term must precede any shorter
// term it contains.
var Rewrites = []Rewrite{
	{From: "자바스크립트", To: "JavaScript"},
	{From: "타입스크립트", To: "TypeScript"},
	{From: "리액트", To: "React"},
	{From: "넥스트", To: "Next.js"},
	{From: "네스트", To: "NestJS"},
	{From: "노드", To: "Node.js"},
	{From: "파이썬", To: "Python"},
	{From: "패스트에이피아이", To: "FastAPI"},
	{From: "몽고디비", To: "MongoDB"},
	{From: "몽구스", To: "Mongoose"},
	{From: "도커", To: "Docker"},
	{From: "올라마", To: "Ollama"},
	{From: "테일윈드", To: "Tailwind"},
	{From: "자바", To: "Java"},
	{From: "고랭", To: "Go"},
}

// fillersByLength holds Fillers longest-first so removal does not depend on
// declaration order.
var fillersByLength = func() []string {
	out := append([]string(nil), Fillers...)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}()

// Normalize strips filler phrases, rewrites known terms, and trims whitespace.
// It never fails; the result may be empty.
func Normalize(raw string) string {
	s := raw
	for _, f := range fillersByLength {
		s = strings.ReplaceAll(s, f, "")
	}
	for _, r := range Rewrites {
		s = strings.ReplaceAll(s, r.From, r.To)
	}
	return strings.Join(dropTokenFillers(strings.Fields(s)), " ")
}

func dropTokenFillers(tokens []string) []string {
	out := tokens[:0]
	for _, tok := range tokens {
		if !slices.Contains(TokenFillers, tok) {
			out = append(out, tok)
		}
	}
	return out
}
