package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/navkit/internal/domain/entity"
	repomocks "github.com/bnema/navkit/internal/domain/repository/mocks"
	"github.com/bnema/navkit/internal/navigation"
)

func TestRecord_CoalescesBurstOfSameURI(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockVisitRepository(t)

	repo.EXPECT().FindByURI(mock.Anything, "https://example.com/app/page").Return(nil, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(v *entity.Visit) bool {
		return v.URI == "https://example.com/app/page" && v.Count == 1
	})).Return(nil).Once()

	uc := NewRecordVisitUseCase(ctx, repo)
	uc.Record(ctx, "https://example.com/app/page")
	uc.Record(ctx, "https://example.com/app/page")
	uc.Record(ctx, "https://example.com/app/page")
	uc.Close()
}

func TestRecord_IncrementsExistingVisit(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockVisitRepository(t)

	existing := entity.NewVisit("https://example.com/app/docs")
	existing.Count = 4

	repo.EXPECT().FindByURI(mock.Anything, "https://example.com/app/docs").Return(existing, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(v *entity.Visit) bool {
		return v.URI == "https://example.com/app/docs" && v.Count == 5
	})).Return(nil).Once()

	uc := NewRecordVisitUseCase(ctx, repo)
	uc.Record(ctx, "https://example.com/app/docs")
	uc.Close()
}

func TestRecord_IgnoresEmptyURI(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockVisitRepository(t)

	uc := NewRecordVisitUseCase(ctx, repo)
	uc.Record(ctx, "   ")
	uc.Close()
}

func TestAttach_RecordsDispatchedLocations(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockVisitRepository(t)

	repo.EXPECT().FindByURI(mock.Anything, "https://example.com/app/next").Return(nil, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(v *entity.Visit) bool {
		return v.URI == "https://example.com/app/next" && v.Count == 1
	})).Return(nil).Once()

	bridge := &stubBridge{}
	m := navigation.NewManagerWithState(bridge, navigation.NewState())

	uc := NewRecordVisitUseCase(ctx, repo)
	handle, err := uc.Attach(ctx, m)
	require.NoError(t, err)
	require.NotNil(t, handle)
	require.Equal(t, 1, bridge.armCalls)

	m.Dispatch(ctx, "https://example.com/app/next")
	uc.Close()
}

// stubBridge is a minimal host bridge for wiring the recorder to a manager.
type stubBridge struct {
	armCalls int
}

func (s *stubBridge) LocationHref(context.Context) (string, error) { return "", nil }
func (s *stubBridge) BaseURI(context.Context) (string, error)      { return "", nil }
func (s *stubBridge) EnableNavigationInterception(context.Context) error {
	s.armCalls++
	return nil
}
