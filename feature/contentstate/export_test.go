package contentstate_test

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"content-state/core/storage/mocks"
	"content-state/feature/contentstate"
	"content-state/feature/contentstate/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExporter_Export(t *testing.T) {
	ctx := context.Background()
	repo := contentstate.NewRepository(setupTestDB(t))
	svc := contentstate.NewService(repo, defaultPolicy(), nil, zap.NewNop())

	for _, id := range []string{"do_1", "do_2"} {
		_, err := svc.Update(ctx, "u1", updateBody(map[string]any{"contentId": id, "status": 1, "progress": 25}))
		require.NoError(t, err)
	}

	var uploaded models.Export
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "content-state", "exports/u1.json", mock.Anything, mock.Anything,
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/json" })).
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(data, &uploaded))
		}).
		Return(minio.UploadInfo{}, nil)

	exporter := contentstate.NewExporter(repo, client, "content-state", "exports", zap.NewNop())
	key, n, err := exporter.Export(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, "exports/u1.json", key)
	assert.Equal(t, 2, n)
	assert.Equal(t, "u1", uploaded.UserID)
	require.Len(t, uploaded.ContentList, 2)
	assert.Equal(t, "do_1", uploaded.ContentList[0]["contentId"])
	client.AssertExpectations(t)
}

func TestExporter_UploadFailure(t *testing.T) {
	repo := contentstate.NewRepository(setupTestDB(t))

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	exporter := contentstate.NewExporter(repo, client, "content-state", "exports", nil)
	_, _, err := exporter.Export(context.Background(), "u1")
	assert.ErrorIs(t, err, assert.AnError)
}
