package models

import (
	"testing"
)

func TestCanTransitionVersionStatus_HappyPath(t *testing.T) {
	steps := []struct {
		from string
		to   string
	}{
		{VersionStatusDraft, VersionStatusInReview},
		{VersionStatusInReview, VersionStatusReadyForPublish},
		{VersionStatusReadyForPublish, VersionStatusPublished},
	}
	for _, step := range steps {
		if !CanTransitionVersionStatus(step.from, step.to) {
			t.Errorf("chuyển '%s' → '%s' phải hợp lệ", step.from, step.to)
		}
	}
}

func TestCanTransitionVersionStatus_Backward(t *testing.T) {
	if !CanTransitionVersionStatus(VersionStatusInReview, VersionStatusDraft) {
		t.Error("'In Review' phải quay lại được 'Draft'")
	}
	if !CanTransitionVersionStatus(VersionStatusReadyForPublish, VersionStatusInReview) {
		t.Error("'Ready For Publish' phải quay lại được 'In Review'")
	}
}

func TestCanTransitionVersionStatus_ArchiveFromNonTerminal(t *testing.T) {
	for _, from := range []string{VersionStatusDraft, VersionStatusInReview, VersionStatusReadyForPublish} {
		if !CanTransitionVersionStatus(from, VersionStatusArchived) {
			t.Errorf("'%s' phải archive được", from)
		}
	}
}

func TestCanTransitionVersionStatus_TerminalIsFrozen(t *testing.T) {
	targets := []string{
		VersionStatusDraft,
		VersionStatusInReview,
		VersionStatusReadyForPublish,
		VersionStatusPublished,
		VersionStatusArchived,
	}
	for _, from := range []string{VersionStatusPublished, VersionStatusArchived} {
		for _, to := range targets {
			if CanTransitionVersionStatus(from, to) {
				t.Errorf("'%s' là trạng thái kết thúc, không được chuyển sang '%s'", from, to)
			}
		}
	}
}

func TestCanTransitionVersionStatus_SkippingSteps(t *testing.T) {
	if CanTransitionVersionStatus(VersionStatusDraft, VersionStatusPublished) {
		t.Error("'Draft' không được publish trực tiếp, phải qua review")
	}
	if CanTransitionVersionStatus(VersionStatusDraft, VersionStatusReadyForPublish) {
		t.Error("'Draft' không được nhảy thẳng sang 'Ready For Publish'")
	}
	if CanTransitionVersionStatus(VersionStatusInReview, VersionStatusPublished) {
		t.Error("'In Review' không được publish trực tiếp")
	}
}

func TestCanTransitionVersionStatus_UnknownStatus(t *testing.T) {
	if CanTransitionVersionStatus("Pending", VersionStatusDraft) {
		t.Error("trạng thái không tồn tại không được chuyển đi đâu")
	}
	if CanTransitionVersionStatus(VersionStatusDraft, "Pending") {
		t.Error("không được chuyển sang trạng thái không tồn tại")
	}
}

func TestIsTerminalVersionStatus(t *testing.T) {
	cases := map[string]bool{
		VersionStatusDraft:           false,
		VersionStatusInReview:        false,
		VersionStatusReadyForPublish: false,
		VersionStatusPublished:       true,
		VersionStatusArchived:        true,
	}
	for status, want := range cases {
		if got := IsTerminalVersionStatus(status); got != want {
			t.Errorf("IsTerminalVersionStatus(%q) = %v, muốn %v", status, got, want)
		}
	}
}
