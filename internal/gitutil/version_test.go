package gitutil

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/accelerator-pr/mocks"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "2.43.0", want: "2.43.0"},
		{raw: "2.43.0.windows.1", want: "2.43.0"},
		{raw: "2.39.3 (Apple Git-146)", want: "2.39.3"},
		{raw: "2.16", want: "2.16.0"},
		{raw: "version", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := ParseVersion(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestCheckVersion(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	tests := []struct {
		name       string
		version    string
		selfUpdate error
		wantUpdate bool
		wantErr    error
	}{
		{name: "recent enough", version: "2.45.1"},
		{name: "exact minimum", version: "2.43.0.windows.1"},
		{name: "updated", version: "2.30.0", wantUpdate: true},
		{name: "update fails", version: "2.30.0", wantUpdate: true, selfUpdate: ErrSelfUpdateUnsupported, wantErr: ErrGitTooOld},
		{name: "below floor", version: "2.9.5", wantErr: ErrGitTooOld},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			b := mocks.NewMockRepositoryBackend(ctrl)
			b.EXPECT().Version(gomock.Any()).Return(tt.version, nil)
			if tt.wantUpdate {
				b.EXPECT().SelfUpdate(gomock.Any()).Return(tt.selfUpdate)
			}

			err := CheckVersion(ctx, b, "2.43.0", "2.16.2", logger)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "2.43.0 or newer is required")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckVersion_VersionFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mocks.NewMockRepositoryBackend(ctrl)
	b.EXPECT().Version(gomock.Any()).Return("", errors.New("git not found"))

	err := CheckVersion(context.Background(), b, "2.43.0", "2.16.2", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "git not found")
}
