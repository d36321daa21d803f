package generator

import (
	"strings"
	"testing"
)

func TestDecodeContentOptionalFieldsDefaultEmpty(t *testing.T) {
	res, err := DecodeContent(`{"title":"T","contentPlan":"P","designSuggestions":"a\nb"}`)
	if err != nil {
		t.Fatalf("DecodeContent: %v", err)
	}
	if res.VisualPrompt != "" || res.ContentPrompt != "" || res.BloomTaxonomyLevel != "" {
		t.Fatalf("omitted optional fields should be empty: %+v", res)
	}
	if res.Title != "T" || res.ContentPlan != "P" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestDecodeContentCodeFence(t *testing.T) {
	res, err := DecodeContent("```json\n" + fullContentJSON + "\n```")
	if err != nil {
		t.Fatalf("DecodeContent: %v", err)
	}
	if res.Title != "The Journey of a Water Drop" {
		t.Fatalf("Title: got=%q", res.Title)
	}
}

func TestDecodeContentErrors(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		wantKind ErrorKind
	}{
		{"plain text", "not json", KindContentParse},
		{"array", `["title"]`, KindContentParse},
		{"wrong type", `{"title": 3, "contentPlan": "p", "designSuggestions": "d"}`, KindContentParse},
		{"trailing garbage", fullContentJSON + " and more", KindContentParse},
		{"null", "null", KindContentIncomplete},
		{"blank required", `{"title":"  ","contentPlan":"p","designSuggestions":"d"}`, KindContentIncomplete},
		{"empty", "", KindContentRequest},
		{"empty fence", "```json\n```", KindContentRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeContent(tc.in)
			kind, ok := KindOf(err)
			if !ok || kind != tc.wantKind {
				t.Fatalf("kind: want=%q got=%q (err=%v)", tc.wantKind, kind, err)
			}
		})
	}
}

func TestDecodeContentReportsMissingFieldsInOrder(t *testing.T) {
	_, err := DecodeContent(`{}`)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "[title contentPlan designSuggestions]") {
		t.Fatalf("missing fields should be listed in schema order: %v", err)
	}
}
