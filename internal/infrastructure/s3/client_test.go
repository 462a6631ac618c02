package s3infra

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockObjectAPI struct{ mock.Mock }

func (m *mockObjectAPI) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, _ := io.ReadAll(in.Body)
	args := m.Called(*in.Bucket, *in.Key, *in.ContentType, string(body))
	return &s3.PutObjectOutput{}, args.Error(0)
}

func (m *mockObjectAPI) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(*in.Bucket, *in.Key)
	return &s3.DeleteObjectOutput{}, args.Error(0)
}

func noPresign(context.Context, string, time.Duration) (string, error) { return "", nil }

func TestUploadJSON(t *testing.T) {
	api := &mockObjectAPI{}
	api.On("PutObject", "bucket", "exports/u1/a.json", "application/json", `[]`).Return(nil)
	uri, err := NewStoreWith(api, "bucket", noPresign).UploadJSON(context.Background(), "exports/u1/a.json", []byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/exports/u1/a.json", uri)
	api.AssertExpectations(t)
}

func TestUpload_WrapsError(t *testing.T) {
	api := &mockObjectAPI{}
	api.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("denied"))
	_, err := NewStoreWith(api, "bucket", noPresign).UploadJSON(context.Background(), "k", []byte(`{}`))
	assert.ErrorContains(t, err, "s3 put object: denied")
}

func TestPresignedURL(t *testing.T) {
	var gotTTL time.Duration
	store := NewStoreWith(&mockObjectAPI{}, "bucket", func(_ context.Context, key string, ttl time.Duration) (string, error) {
		gotTTL = ttl
		return "https://signed/" + key, nil
	})
	url, err := store.PresignedURL(context.Background(), "k", 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "https://signed/k", url)
	assert.Equal(t, 5*time.Minute, gotTTL)
}

func TestDelete(t *testing.T) {
	api := &mockObjectAPI{}
	api.On("DeleteObject", "bucket", "k").Return(nil)
	require.NoError(t, NewStoreWith(api, "bucket", noPresign).Delete(context.Background(), "k"))
	api.AssertExpectations(t)
}
