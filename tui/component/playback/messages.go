package playback

import (
	"github.com/google/uuid"
	"github.com/safedep/rewind/core/member"
	corerunner "github.com/safedep/rewind/core/runner"
	"github.com/safedep/rewind/core/version"
)

type membersLoadedMsg struct {
	summaries []*member.Summary
}

type versionsLoadedMsg struct {
	member *member.Member
	seq    *version.Sequence
}

type advancedMsg struct{}

type runFinishedMsg struct {
	versionID uuid.UUID
	result    *corerunner.Result
	err       error
}

type loadErrorMsg struct {
	err error
}
