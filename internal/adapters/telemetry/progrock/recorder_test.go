package progrock_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	progrockpb "github.com/vito/progrock"
	"go.trai.ch/justrun/internal/adapters/telemetry/progrock"
	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/justrun/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := progrock.New(mocks.NewMockLogger(ctrl))
	assert.NotNil(t, recorder)
}

func TestSummaryWriter_WriteStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockLogger(ctrl)

	started := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	completed := started.Add(1500 * time.Millisecond)
	failure := "exit status 2"

	gomock.InOrder(
		sink.EXPECT().Info("hash inputs: done in 1.5s"),
		sink.EXPECT().Info("build: cached"),
		sink.EXPECT().Warn("run dist/main.js: failed: exit status 2"),
	)

	w := progrock.NewSummaryWriter(sink)

	// Running vertices are not reported.
	assert.NoError(t, w.WriteStatus(&progrockpb.StatusUpdate{
		Vertexes: []*progrockpb.Vertex{
			{Id: "a", Name: "hash inputs", Started: timestamppb.New(started)},
		},
	}))

	assert.NoError(t, w.WriteStatus(&progrockpb.StatusUpdate{
		Vertexes: []*progrockpb.Vertex{
			{Id: "a", Name: "hash inputs", Started: timestamppb.New(started), Completed: timestamppb.New(completed)},
			{Id: "b", Name: "build", Started: timestamppb.New(started), Completed: timestamppb.New(started), Cached: true},
		},
	}))

	// Already reported vertices are skipped.
	assert.NoError(t, w.WriteStatus(&progrockpb.StatusUpdate{
		Vertexes: []*progrockpb.Vertex{
			{Id: "a", Name: "hash inputs", Started: timestamppb.New(started), Completed: timestamppb.New(completed)},
			{Id: "c", Name: "run dist/main.js", Started: timestamppb.New(started), Completed: timestamppb.New(completed), Error: &failure},
		},
	}))

	assert.NoError(t, w.Close())
}

func TestRecorder_RecordAndClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockLogger(ctrl)
	sink.EXPECT().Info("build: cached")
	sink.EXPECT().Warn("build: failed: boom")

	recorder := progrock.NewRecorder(progrock.NewSummaryWriter(sink))

	_, first := recorder.Record(t.Context(), "build")
	_, second := recorder.Record(t.Context(), "build")
	assert.NotSame(t, first, second)

	_, _ = first.Stdout().Write([]byte("compiling\n"))
	first.Log(domain.LogLevelWarn, "slow disk")
	first.Cached()
	first.Complete(nil)
	second.Complete(errors.New("boom"))

	assert.NoError(t, recorder.Close())
}
