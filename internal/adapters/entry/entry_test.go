package entry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gaecom/arco-cli/internal/adapters/entry"
	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/gaecom/arco-cli/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Prepare(t *testing.T) {
	project := &domain.Project{Style: domain.StyleConfig{
		Base:    "/p",
		Entries: []string{"components/**/style/index.css"},
	}}

	tests := []struct {
		name    string
		matches []string
		err     error
		expect  func(l *mocks.MockLogger)
		wantErr bool
	}{
		{
			name:    "entries found",
			matches: []string{"/p/components/style/index.css", "/p/components/button/style/index.css"},
			expect:  func(l *mocks.MockLogger) { l.EXPECT().Info("found 2 style entries") },
		},
		{
			name:   "no matches",
			expect: func(l *mocks.MockLogger) { l.EXPECT().Warn("style entries matched no files") },
		},
		{
			name:    "resolver failure",
			err:     errors.New("invalid glob pattern"),
			expect:  func(*mocks.MockLogger) {},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			resolver := mocks.NewMockGlobResolver(ctrl)
			log := mocks.NewMockLogger(ctrl)

			resolver.EXPECT().Resolve("/p", project.Style.Entries).Return(tt.matches, tt.err)
			tt.expect(log)

			err := entry.New(resolver, log).Prepare(context.Background(), project)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestHandler_Prepare_NoEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("no style entries configured")

	err := entry.New(mocks.NewMockGlobResolver(ctrl), log).Prepare(context.Background(), &domain.Project{})
	require.NoError(t, err)
}
