package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"linguabridge/backend/internal/language"
	"linguabridge/backend/internal/model"
	"linguabridge/backend/internal/repository"
	repomock "linguabridge/backend/internal/repository/mock"
	"linguabridge/backend/internal/repository/testutil"
	"linguabridge/backend/internal/service"
	"linguabridge/backend/internal/translate"
)

type convFixture struct {
	chat          service.ChatService
	conversations service.ConversationService
	now           *time.Time
}

func newConvFixture(t *testing.T) convFixture {
	t.Helper()
	now, clock := fixedClock(baseTime)
	sessions := service.NewSessionManager(clock)
	repo := repository.NewConversationRepository(testutil.NewTestDB(t))
	return convFixture{
		chat:          service.NewChatService(sessions, translate.NewStubTranslator(0), translate.NewRateLimiter(100)),
		conversations: service.NewConversationService(sessions, repo),
		now:           now,
	}
}

func TestConversationService_SaveAndRestoreRoundTrip(t *testing.T) {
	f := newConvFixture(t)
	ctx := context.Background()

	_, err := f.chat.Translate(ctx, "s1", "hello", "English", "Spanish")
	require.NoError(t, err)
	snapshot := f.chat.History("s1")

	conv, saved, err := f.conversations.Save(ctx, "s1", "English", "Spanish")
	require.NoError(t, err)
	require.True(t, saved)
	require.Equal(t, "conv_20260901_103001", conv.ID)
	require.Equal(t, "English → Spanish", conv.LanguagePair)
	require.Equal(t, "2026-09-01 10:30", conv.SavedAt)

	// Mutate the live transcript after saving.
	*f.now = f.now.Add(time.Minute)
	_, err = f.chat.Translate(ctx, "s1", "more", "English", "Spanish")
	require.NoError(t, err)
	require.Len(t, f.chat.History("s1"), 4)

	// Restore reproduces the exact saved sequence.
	restored, err := f.conversations.Restore(ctx, "s1", conv.ID)
	require.NoError(t, err)
	require.Equal(t, snapshot, restored)
	require.Equal(t, snapshot, f.chat.History("s1"))
}

func TestConversationService_SaveEmptyTranscriptIsNoop(t *testing.T) {
	f := newConvFixture(t)
	ctx := context.Background()

	_, saved, err := f.conversations.Save(ctx, "s1", "English", "Spanish")
	require.NoError(t, err)
	require.False(t, saved)

	list, err := f.conversations.List(ctx, "s1")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestConversationService_SaveUnknownLanguageRejected(t *testing.T) {
	f := newConvFixture(t)

	_, _, err := f.conversations.Save(context.Background(), "s1", "Klingon", "Spanish")
	require.ErrorIs(t, err, language.ErrUnknownLanguage)
}

func TestConversationService_SameSecondSaveOverwrites(t *testing.T) {
	f := newConvFixture(t)
	ctx := context.Background()

	_, err := f.chat.Translate(ctx, "s1", "first", "English", "Spanish")
	require.NoError(t, err)

	first, saved, err := f.conversations.Save(ctx, "s1", "English", "Spanish")
	require.NoError(t, err)
	require.True(t, saved)

	// Grow the transcript without advancing the clock past the second.
	_, err = f.chat.Translate(ctx, "s1", "second", "English", "Spanish")
	require.NoError(t, err)

	second, saved, err := f.conversations.Save(ctx, "s1", "English", "Spanish")
	require.NoError(t, err)
	require.True(t, saved)
	require.Equal(t, first.ID, second.ID, "same-second saves share an id")

	// The later save wins; nothing is silently dropped into limbo.
	list, err := f.conversations.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Turns, 4)
}

func TestConversationService_RestoreUnknownLeavesTranscriptUntouched(t *testing.T) {
	f := newConvFixture(t)
	ctx := context.Background()

	_, err := f.chat.Translate(ctx, "s1", "hello", "English", "Spanish")
	require.NoError(t, err)
	before := f.chat.History("s1")

	_, err = f.conversations.Restore(ctx, "s1", "conv_nonexistent")
	require.ErrorIs(t, err, service.ErrNotFound)
	require.Equal(t, before, f.chat.History("s1"))
}

func TestConversationService_RestoredTranscriptIsACopy(t *testing.T) {
	f := newConvFixture(t)
	ctx := context.Background()

	_, err := f.chat.Translate(ctx, "s1", "hello", "English", "Spanish")
	require.NoError(t, err)

	conv, _, err := f.conversations.Save(ctx, "s1", "English", "Spanish")
	require.NoError(t, err)

	_, err = f.conversations.Restore(ctx, "s1", conv.ID)
	require.NoError(t, err)

	// Mutating the restored live transcript must not alter the snapshot.
	*f.now = f.now.Add(time.Minute)
	_, err = f.chat.Translate(ctx, "s1", "more", "English", "Spanish")
	require.NoError(t, err)

	stored, err := f.conversations.Restore(ctx, "s1", conv.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
}

func TestConversationService_ClearDoesNotAffectStore(t *testing.T) {
	f := newConvFixture(t)
	ctx := context.Background()

	_, err := f.chat.Translate(ctx, "s1", "hello", "English", "Spanish")
	require.NoError(t, err)
	conv, _, err := f.conversations.Save(ctx, "s1", "English", "Spanish")
	require.NoError(t, err)

	f.chat.Clear("s1")
	require.Empty(t, f.chat.History("s1"))

	restored, err := f.conversations.Restore(ctx, "s1", conv.ID)
	require.NoError(t, err)
	require.Len(t, restored, 2)
}

func TestConversationService_RecentLimitsListing(t *testing.T) {
	f := newConvFixture(t)
	ctx := context.Background()

	_, err := f.chat.Translate(ctx, "s1", "hello", "English", "Spanish")
	require.NoError(t, err)

	var lastID string
	for i := 0; i < 7; i++ {
		conv, saved, err := f.conversations.Save(ctx, "s1", "English", "Spanish")
		require.NoError(t, err)
		require.True(t, saved)
		lastID = conv.ID
		*f.now = f.now.Add(time.Second)
	}

	recent, err := f.conversations.Recent(ctx, "s1", 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	require.Equal(t, lastID, recent[4].ID, "most recent save is last, insertion order")

	all, err := f.conversations.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, all, 7)
}

func TestConversationService_SaveRepositoryErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, clock := fixedClock(baseTime)
	sessions := service.NewSessionManager(clock)
	chat := service.NewChatService(sessions, translate.NewStubTranslator(0), translate.NewRateLimiter(100))

	mockRepo := repomock.NewMockConversationRepository(ctrl)
	mockRepo.EXPECT().
		Save(gomock.Any(), "s1", gomock.Any()).
		Return(errors.New("disk on fire"))

	svc := service.NewConversationService(sessions, mockRepo)

	_, err := chat.Translate(context.Background(), "s1", "hello", "English", "Spanish")
	require.NoError(t, err)

	_, _, err = svc.Save(context.Background(), "s1", "English", "Spanish")
	require.Error(t, err)
	require.Contains(t, err.Error(), "save conversation")
}

func TestConversationService_SnapshotIsDeepCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, clock := fixedClock(baseTime)
	sessions := service.NewSessionManager(clock)
	chat := service.NewChatService(sessions, translate.NewStubTranslator(0), translate.NewRateLimiter(100))

	var captured model.SavedConversation
	mockRepo := repomock.NewMockConversationRepository(ctrl)
	mockRepo.EXPECT().
		Save(gomock.Any(), "s1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, conv model.SavedConversation) error {
			captured = conv
			return nil
		})

	svc := service.NewConversationService(sessions, mockRepo)

	_, err := chat.Translate(context.Background(), "s1", "hello", "English", "Spanish")
	require.NoError(t, err)

	_, _, err = svc.Save(context.Background(), "s1", "English", "Spanish")
	require.NoError(t, err)

	// Appending to the live transcript must not grow the snapshot.
	_, err = chat.Translate(context.Background(), "s1", "more", "English", "Spanish")
	require.NoError(t, err)
	require.Len(t, captured.Turns, 2)
}
