package domain

import (
	"fmt"
	"strings"
)

// GraphicType は生成する教材の種類です。
type GraphicType string

const (
	GraphicInfographic     GraphicType = "Infographic"
	GraphicFlowchart       GraphicType = "Flowchart"
	GraphicTimeline        GraphicType = "Timeline"
	GraphicDiagram         GraphicType = "Diagram"
	GraphicProcessDiagram  GraphicType = "Process Diagram"
	GraphicComparisonChart GraphicType = "Comparison Chart"
	GraphicMindMap         GraphicType = "Mind Map"
	GraphicComicSummary    GraphicType = "Comic Summary"
	GraphicWorksheet       GraphicType = "Worksheet"
)

// GraphicTypes はフォームの表示順です。
var GraphicTypes = []GraphicType{
	GraphicInfographic,
	GraphicFlowchart,
	GraphicTimeline,
	GraphicDiagram,
	GraphicProcessDiagram,
	GraphicComparisonChart,
	GraphicMindMap,
	GraphicComicSummary,
	GraphicWorksheet,
}

// Difficulty は Bloom の分類に基づく 4 段階の思考レベルです。
type Difficulty string

const (
	DifficultyRecall              Difficulty = "Recall"
	DifficultyComprehension       Difficulty = "Comprehension"
	DifficultyApplication         Difficulty = "Application"
	DifficultyAdvancedApplication Difficulty = "Advanced Application"
)

var Difficulties = []Difficulty{
	DifficultyRecall,
	DifficultyComprehension,
	DifficultyApplication,
	DifficultyAdvancedApplication,
}

// OutputLanguage は生成結果の言語です。
type OutputLanguage string

const (
	LanguageVietnamese OutputLanguage = "Vietnamese"
	LanguageEnglish    OutputLanguage = "English"
)

var OutputLanguages = []OutputLanguage{LanguageVietnamese, LanguageEnglish}

// DisplayName はプロンプト内で使う言語の表記です。
func (l OutputLanguage) DisplayName() string {
	if l == LanguageVietnamese {
		return "VIETNAMESE (Tiếng Việt)"
	}
	return "ENGLISH"
}

// StylePreset はビジュアルスタイルのプリセットです。
type StylePreset string

const (
	StyleModernProfessional StylePreset = "Modern Professional"
	StylePlayfulColorful    StylePreset = "Playful & Colorful"
	StyleAcademicMinimalist StylePreset = "Academic Minimalist"
	StyleComic              StylePreset = "Comic Style"
)

var StylePresets = []StylePreset{
	StyleModernProfessional,
	StylePlayfulColorful,
	StyleAcademicMinimalist,
	StyleComic,
}

const (
	minGrade = 1
	maxGrade = 12
)

// GradeLevels は "Grade 1" から "Grade 12" までのラベルを昇順で返します。
func GradeLevels() []string {
	levels := make([]string, 0, maxGrade-minGrade+1)
	for g := minGrade; g <= maxGrade; g++ {
		levels = append(levels, gradeLabel(g))
	}
	return levels
}

func gradeLabel(g int) string {
	return fmt.Sprintf("Grade %d", g)
}

// フォームの初期値
const (
	DefaultGradeLevel  = "Grade 6"
	DefaultGraphicType = GraphicInfographic
	DefaultDifficulty  = DifficultyComprehension
	DefaultStyle       = StyleModernProfessional
	DefaultLanguage    = LanguageVietnamese
)

// LessonRequest は教材生成リクエストの入力モデルです。リクエスト単位で不変として扱います。
type LessonRequest struct {
	Topic              string         `json:"topic"`
	Subject            string         `json:"subject"`
	GradeLevel         string         `json:"gradeLevel"`
	LearningObjectives string         `json:"learningObjectives"`
	StylePreference    StylePreset    `json:"stylePreference"`
	GraphicType        GraphicType    `json:"graphicType"`
	OutputLanguage     OutputLanguage `json:"outputLanguage"`
	Difficulty         Difficulty     `json:"difficulty"`
}

// DefaultLessonRequest はフォーム初期表示用のリクエストを返します。
func DefaultLessonRequest() LessonRequest {
	return LessonRequest{
		GradeLevel:      DefaultGradeLevel,
		StylePreference: DefaultStyle,
		GraphicType:     DefaultGraphicType,
		OutputLanguage:  DefaultLanguage,
		Difficulty:      DefaultDifficulty,
	}
}

// Normalize は前後の空白を除去し、認識できた列挙値を正規の表記に揃えたコピーを返します。
// 認識できない値はそのまま残し、Validate で報告させます。
func (r LessonRequest) Normalize() LessonRequest {
	r.Topic = strings.TrimSpace(r.Topic)
	r.Subject = strings.TrimSpace(r.Subject)
	r.GradeLevel = strings.TrimSpace(r.GradeLevel)
	r.LearningObjectives = strings.TrimSpace(r.LearningObjectives)
	if v, err := ParseStylePreset(string(r.StylePreference)); err == nil {
		r.StylePreference = v
	}
	if v, err := ParseGraphicType(string(r.GraphicType)); err == nil {
		r.GraphicType = v
	}
	if v, err := ParseOutputLanguage(string(r.OutputLanguage)); err == nil {
		r.OutputLanguage = v
	}
	if v, err := ParseDifficulty(string(r.Difficulty)); err == nil {
		r.Difficulty = v
	}
	return r
}

// Validate は必須項目と列挙値を検証します。
func (r LessonRequest) Validate() error {
	var fields []FieldError

	if strings.TrimSpace(r.Topic) == "" {
		fields = append(fields, FieldError{Field: "topic", Message: "topic is required"})
	}
	if strings.TrimSpace(r.Subject) == "" {
		fields = append(fields, FieldError{Field: "subject", Message: "subject is required"})
	}
	if _, err := ParseGradeLevel(r.GradeLevel); err != nil {
		fields = append(fields, FieldError{Field: "gradeLevel", Message: err.Error()})
	}
	if _, err := ParseStylePreset(string(r.StylePreference)); err != nil {
		fields = append(fields, FieldError{Field: "stylePreference", Message: err.Error()})
	}
	if _, err := ParseGraphicType(string(r.GraphicType)); err != nil {
		fields = append(fields, FieldError{Field: "graphicType", Message: err.Error()})
	}
	if _, err := ParseOutputLanguage(string(r.OutputLanguage)); err != nil {
		fields = append(fields, FieldError{Field: "outputLanguage", Message: err.Error()})
	}
	if _, err := ParseDifficulty(string(r.Difficulty)); err != nil {
		fields = append(fields, FieldError{Field: "difficulty", Message: err.Error()})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func ParseGraphicType(s string) (GraphicType, error) {
	return parseLabel(s, GraphicTypes, "graphic type")
}

func ParseDifficulty(s string) (Difficulty, error) {
	return parseLabel(s, Difficulties, "difficulty")
}

func ParseOutputLanguage(s string) (OutputLanguage, error) {
	return parseLabel(s, OutputLanguages, "output language")
}

func ParseStylePreset(s string) (StylePreset, error) {
	return parseLabel(s, StylePresets, "style preset")
}

// ParseGradeLevel は "Grade N" 形式のラベルを検証し、学年の数値を返します。
func ParseGradeLevel(s string) (int, error) {
	var g int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "Grade %d", &g); err != nil || gradeLabel(g) != strings.TrimSpace(s) {
		return 0, fmt.Errorf("unknown grade level %q", s)
	}
	if g < minGrade || g > maxGrade {
		return 0, fmt.Errorf("grade level %q out of range", s)
	}
	return g, nil
}

// parseLabel は大文字小文字を区別せずに列挙値を照合します。
func parseLabel[T ~string](s string, allowed []T, what string) (T, error) {
	trimmed := strings.TrimSpace(s)
	for _, v := range allowed {
		if strings.EqualFold(string(v), trimmed) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", what, s)
}
