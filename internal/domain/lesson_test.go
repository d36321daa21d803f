package domain

import (
	"errors"
	"testing"
)

func validRequest() LessonRequest {
	req := DefaultLessonRequest()
	req.Topic = "Water Cycle"
	req.Subject = "Science"
	return req
}

func TestDefaultLessonRequest(t *testing.T) {
	req := DefaultLessonRequest()
	if req.GradeLevel != "Grade 6" || req.GraphicType != GraphicInfographic ||
		req.Difficulty != DifficultyComprehension || req.StylePreference != StyleModernProfessional ||
		req.OutputLanguage != LanguageVietnamese {
		t.Fatalf("unexpected defaults: %+v", req)
	}
}

func TestGradeLevels(t *testing.T) {
	levels := GradeLevels()
	if len(levels) != 12 || levels[0] != "Grade 1" || levels[11] != "Grade 12" {
		t.Fatalf("unexpected grade levels: %v", levels)
	}
}

func TestValidate(t *testing.T) {
	if err := validRequest().Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	req := validRequest()
	req.Topic = "  "
	req.Subject = ""
	req.GradeLevel = "Grade 0"
	req.GraphicType = "Poster"

	err := req.Validate()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	for _, field := range []string{"topic", "subject", "gradeLevel", "graphicType"} {
		if !vErr.Has(field) {
			t.Fatalf("field %q should be reported: %v", field, vErr)
		}
	}
	if vErr.Has("difficulty") {
		t.Fatalf("difficulty is valid and should not be reported")
	}
}

func TestNormalize(t *testing.T) {
	req := LessonRequest{
		Topic:           "  Photosynthesis ",
		Subject:         " Biology",
		GradeLevel:      " Grade 7 ",
		StylePreference: "comic style",
		GraphicType:     "mind map",
		OutputLanguage:  "english",
		Difficulty:      "advanced application",
	}.Normalize()

	if req.Topic != "Photosynthesis" || req.Subject != "Biology" || req.GradeLevel != "Grade 7" {
		t.Fatalf("text fields should be trimmed: %+v", req)
	}
	if req.StylePreference != StyleComic || req.GraphicType != GraphicMindMap ||
		req.OutputLanguage != LanguageEnglish || req.Difficulty != DifficultyAdvancedApplication {
		t.Fatalf("enums should be canonical: %+v", req)
	}

	unknown := LessonRequest{GraphicType: "Poster"}.Normalize()
	if unknown.GraphicType != "Poster" {
		t.Fatalf("unknown values should be left for Validate, got %q", unknown.GraphicType)
	}
}

func TestParseGradeLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"Grade 1", 1, false},
		{"Grade 12", 12, false},
		{" Grade 6 ", 6, false},
		{"Grade 13", 0, true},
		{"Grade 0", 0, true},
		{"Grade 06", 0, true},
		{"6", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseGradeLevel(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Fatalf("ParseGradeLevel(%q): got=%d err=%v", tc.in, got, err)
		}
	}
}

func TestOutputLanguageDisplayName(t *testing.T) {
	if got := LanguageVietnamese.DisplayName(); got != "VIETNAMESE (Tiếng Việt)" {
		t.Fatalf("got %q", got)
	}
	if got := LanguageEnglish.DisplayName(); got != "ENGLISH" {
		t.Fatalf("got %q", got)
	}
}

func TestResultHelpers(t *testing.T) {
	res := LessonResult{
		DesignSuggestions:  "Use icons\n\n  Keep margins wide  \n",
		BloomTaxonomyLevel: "Application: students use the model",
	}
	got := res.Suggestions()
	if len(got) != 2 || got[0] != "Use icons" || got[1] != "Keep margins wide" {
		t.Fatalf("Suggestions: %q", got)
	}
	if res.BloomLabel() != "Application" {
		t.Fatalf("BloomLabel: %q", res.BloomLabel())
	}
	if res.HasPreview() {
		t.Fatalf("no preview expected")
	}
	if (LessonResult{}).BloomLabel() != "" {
		t.Fatalf("empty level should give empty label")
	}
}
