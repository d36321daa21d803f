package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"edu-prompt-web/internal/domain"
	"edu-prompt-web/internal/generator"
)

type fakeGenerator struct {
	result  *domain.LessonResult
	err     error
	preview bool
	calls   int
}

func (f *fakeGenerator) Generate(ctx context.Context, req domain.LessonRequest) (*domain.LessonResult, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeGenerator) PreviewEnabled() bool { return f.preview }

type fakeNotifier struct {
	reqs []domain.NotificationRequest
	err  error
}

func (f *fakeNotifier) NotifyError(ctx context.Context, errDetail error, req domain.NotificationRequest) error {
	f.reqs = append(f.reqs, req)
	return f.err
}

func lessonRequest() domain.LessonRequest {
	req := domain.DefaultLessonRequest()
	req.Topic = "Water Cycle"
	req.Subject = "Science"
	return req
}

func TestExecuteSuccessDoesNotNotify(t *testing.T) {
	gen := &fakeGenerator{result: &domain.LessonResult{Title: "T", ContentPlan: "P", DesignSuggestions: "D"}, preview: true}
	n := &fakeNotifier{}
	p, err := NewLessonPipeline(gen, n)
	if err != nil {
		t.Fatalf("NewLessonPipeline: %v", err)
	}

	res, err := p.Execute(context.Background(), lessonRequest())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Title != "T" {
		t.Fatalf("Title: got=%q", res.Title)
	}
	if len(n.reqs) != 0 {
		t.Fatalf("no notification expected on success, got %d", len(n.reqs))
	}
}

func TestExecuteFailureNotifiesWithKind(t *testing.T) {
	genErr := &generator.GenerationError{Kind: generator.KindContentParse, Message: "bad format"}
	gen := &fakeGenerator{err: fmt.Errorf("wrapped: %w", genErr)}
	n := &fakeNotifier{err: errors.New("slack down")}
	p, _ := NewLessonPipeline(gen, n)

	res, err := p.Execute(context.Background(), lessonRequest())
	if res != nil {
		t.Fatalf("no result expected on failure")
	}
	if !errors.Is(err, genErr) {
		t.Fatalf("error should be returned unchanged, got %v", err)
	}
	if len(n.reqs) != 1 {
		t.Fatalf("expected one notification, got %d", len(n.reqs))
	}
	got := n.reqs[0]
	if got.ErrorKind != string(generator.KindContentParse) || got.Category != domain.CategoryContentFailure {
		t.Fatalf("unexpected notification: %+v", got)
	}
	if got.GenerationID == "" || got.Topic != "Water Cycle" {
		t.Fatalf("notification should carry id and topic: %+v", got)
	}
}

func TestExecuteCanceledIsNotReported(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("content: %w", context.Canceled)}
	n := &fakeNotifier{}
	p, _ := NewLessonPipeline(gen, n)

	if _, err := p.Execute(context.Background(), lessonRequest()); err == nil {
		t.Fatalf("expected error")
	}
	if len(n.reqs) != 0 {
		t.Fatalf("canceled requests should not be reported")
	}
}

func TestExecuteWithoutNotifier(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("boom")}
	p, _ := NewLessonPipeline(gen, nil)

	if _, err := p.Execute(context.Background(), lessonRequest()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewLessonPipelineRequiresGenerator(t *testing.T) {
	if _, err := NewLessonPipeline(nil, nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestFailureStatus(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&generator.GenerationError{Kind: generator.KindContentIncomplete}, "content_incomplete"},
		{context.Canceled, "canceled"},
		{errors.New("other"), "error"},
	}
	for _, tc := range cases {
		if got := failureStatus(tc.err); got != tc.want {
			t.Fatalf("failureStatus(%v): want=%q got=%q", tc.err, tc.want, got)
		}
	}
}

func TestPreviewResult(t *testing.T) {
	p, _ := NewLessonPipeline(&fakeGenerator{preview: false}, nil)
	if got := p.previewResult(&domain.LessonResult{}); got != "disabled" {
		t.Fatalf("got %q", got)
	}

	p, _ = NewLessonPipeline(&fakeGenerator{preview: true}, nil)
	if got := p.previewResult(&domain.LessonResult{PreviewImageURL: "data:image/png;base64,AA=="}); got != "attached" {
		t.Fatalf("got %q", got)
	}
	if got := p.previewResult(&domain.LessonResult{}); got != "missing" {
		t.Fatalf("got %q", got)
	}
}
