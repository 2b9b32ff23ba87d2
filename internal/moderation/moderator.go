package moderation

import (
	"context"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/Guyuepp/vidstream/domain"
)

// textModerator 先用 bluemonday 清洗标签, 再做关键词过滤
type textModerator struct {
	policy *bluemonday.Policy
	banned []string
}

var _ domain.ContentModerator = (*textModerator)(nil)

func NewTextModerator(bannedWords []string) *textModerator {
	lowered := make([]string, 0, len(bannedWords))
	for _, w := range bannedWords {
		w = strings.TrimSpace(strings.ToLower(w))
		if w != "" {
			lowered = append(lowered, w)
		}
	}
	return &textModerator{
		policy: bluemonday.StrictPolicy(),
		banned: lowered,
	}
}

func (m *textModerator) Clean(_ context.Context, text string) (string, error) {
	cleaned := strings.TrimSpace(m.policy.Sanitize(text))
	if cleaned == "" {
		return "", domain.ErrBadParamInput
	}

	lowered := strings.ToLower(cleaned)
	for _, w := range m.banned {
		if strings.Contains(lowered, w) {
			return "", domain.ErrBadParamInput
		}
	}

	return cleaned, nil
}
