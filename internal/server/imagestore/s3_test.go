package imagestore

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	puts    []*s3.PutObjectInput
	body    []byte
	deletes []string
	err     error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, in)
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deletes = append(f.deletes, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store_PutAndDelete(t *testing.T) {
	fake := &fakeS3{}
	s := NewS3StoreWithClient(fake, "content", "http://127.0.0.1:9000/")

	url, err := s.Put(context.Background(), "program/a.jpg", Image{Data: []byte("jpg"), ContentType: "image/jpeg"})
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000/content/program/a.jpg", url)

	require.Len(t, fake.puts, 1)
	assert.Equal(t, "content", aws.ToString(fake.puts[0].Bucket))
	assert.Equal(t, "image/jpeg", aws.ToString(fake.puts[0].ContentType))
	assert.Equal(t, []byte("jpg"), fake.body)

	require.NoError(t, s.Delete(context.Background(), url))
	require.NoError(t, s.Delete(context.Background(), "http://elsewhere/x.jpg"))
	assert.Equal(t, []string{"program/a.jpg"}, fake.deletes)
}

func TestS3Store_Errors(t *testing.T) {
	fake := &fakeS3{err: errors.New("denied")}
	s := NewS3StoreWithClient(fake, "content", "http://minio")

	_, err := s.Put(context.Background(), "k", Image{})
	assert.ErrorContains(t, err, "denied")
	assert.ErrorContains(t, s.Delete(context.Background(), "http://minio/content/k"), "denied")
}

func TestNewS3Store_UsesSeams(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() { loadDefaultAWSConfig, newS3ClientFromConfig = origLoad, origNew })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{Region: "us-east-1"}, nil
	}

	fake := &fakeS3{}
	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) S3API {
		for _, fn := range optFns {
			fn(&opts)
		}
		return fake
	}

	s, err := NewS3Store(context.Background(), S3Config{Bucket: "b", BaseEndpoint: "http://minio:9000"})
	require.NoError(t, err)
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, "http://minio:9000", aws.ToString(opts.BaseEndpoint))

	url, err := s.Put(context.Background(), "k.png", Image{})
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000/b/k.png", url)
}

func TestNewS3Store_ConfigError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}

	_, err := NewS3Store(context.Background(), S3Config{})
	assert.ErrorContains(t, err, "no config")
}
