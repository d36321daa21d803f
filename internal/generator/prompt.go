package generator

import (
	"fmt"
	"strings"

	"edu-prompt-web/internal/domain"
)

// 教材の種類ごとの構成ヒント
var shapingHints = map[domain.GraphicType]string{
	domain.GraphicFlowchart:       "Focus on logic and the order of steps: every node must follow from the previous one, with clear decision points.",
	domain.GraphicProcessDiagram:  "Focus on logic and the order of steps: number each stage and state its input and output.",
	domain.GraphicComicSummary:    "Focus on panels and dialogue: split the story into numbered panels, each with a scene description and short speech bubbles.",
	domain.GraphicInfographic:     "Focus on data and information zoning: group facts into clearly separated zones and highlight key figures.",
	domain.GraphicWorksheet:       "Focus on question structure: organize sections by question type and progress from easy to hard, with an answer key.",
	domain.GraphicTimeline:        "Focus on chronology: list events in time order with a date or period and one key takeaway each.",
	domain.GraphicDiagram:         "Focus on labelled components and the relationships between them.",
	domain.GraphicComparisonChart: "Focus on comparison criteria: define the criteria first, then compare every item against each criterion.",
	domain.GraphicMindMap:         "Focus on one central concept with main branches and sub-branches, using short keywords.",
}

// ShapingHint は教材の種類に対応した構成ヒントを返します。未知の種類では汎用ヒントを返します。
func ShapingHint(t domain.GraphicType) string {
	if hint, ok := shapingHints[t]; ok {
		return hint
	}
	return "Focus on a clear structure that a student can follow without extra explanation."
}

// BuildSystemInstruction は Step 1 のシステム指示を組み立てます。
func BuildSystemInstruction(req domain.LessonRequest) string {
	var sb strings.Builder
	sb.WriteString("You are a senior instructional designer and prompt engineer.\n")
	fmt.Fprintf(&sb, "Task: create high-quality educational material of type: %s.\n", req.GraphicType)
	fmt.Fprintf(&sb, "Target cognitive level (Bloom's taxonomy): %s.\n", req.Difficulty)
	fmt.Fprintf(&sb, "Language of the content returned to the user: %s.\n\n", req.OutputLanguage.DisplayName())
	fmt.Fprintf(&sb, "Special requirements for %q:\n", req.GraphicType)
	fmt.Fprintf(&sb, "- %s\n\n", ShapingHint(req.GraphicType))
	fmt.Fprintf(&sb, "'visualPrompt' (for an image-generation AI) must always be written in detailed English, "+
		"describing the layout, the art style and the visual elements characteristic of a %q.", req.GraphicType)
	return sb.String()
}

// BuildContentPrompt は入力モデルの全項目を埋め込んだユーザープロンプトを組み立てます。
func BuildContentPrompt(req domain.LessonRequest) string {
	objectives := req.LearningObjectives
	if objectives == "" {
		objectives = "not specified"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Create in-depth educational content for the type: %s.\n", req.GraphicType)
	fmt.Fprintf(&sb, "Topic: %q.\n", req.Topic)
	fmt.Fprintf(&sb, "Subject: %s. Grade: %s.\n", req.Subject, req.GradeLevel)
	fmt.Fprintf(&sb, "Learning objectives: %s.\n", objectives)
	fmt.Fprintf(&sb, "Preferred style: %s.\n", req.StylePreference)
	fmt.Fprintf(&sb, "Difficulty: %s.\n\n", req.Difficulty)
	sb.WriteString("Required JSON structure:\n")
	fmt.Fprintf(&sb, "- %s: an engaging title.\n", fieldTitle)
	fmt.Fprintf(&sb, "- %s: a detailed English prompt to generate the layout/image (DALL-E/Midjourney style).\n", fieldVisualPrompt)
	fmt.Fprintf(&sb, "- %s: a prompt that makes a text AI write the detailed content (ChatGPT style).\n", fieldContentPrompt)
	fmt.Fprintf(&sb, "- %s: a detailed content plan (sections, list of questions, or the nodes of the diagram).\n", fieldContentPlan)
	fmt.Fprintf(&sb, "- %s: colour suggestions (hex codes), fonts and suitable icons, one suggestion per line.\n", fieldDesignSuggestions)
	fmt.Fprintf(&sb, "- %s: a short explanation of why this design reaches the %s level.", fieldBloomTaxonomyLevel, req.Difficulty)
	return sb.String()
}

// BuildImagePrompt は Step 2 のプレビュー画像用プロンプトを組み立てます。
func BuildImagePrompt(req domain.LessonRequest) string {
	return fmt.Sprintf(
		"A professional educational %s layout about %s. Style: %s. Clean, organized, instructional design, high quality.",
		strings.ToLower(string(req.GraphicType)), req.Topic, req.StylePreference,
	)
}
