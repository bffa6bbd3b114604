package utility

import (
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	aws_s3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMediaStore keeps object keys in memory and records what gets
// listed and deleted.
type fakeMediaStore struct {
	s3iface.S3API
	objects      []string
	listedPrefix string
	deleted      []string
}

func (f *fakeMediaStore) ListObjectsV2(in *aws_s3.ListObjectsV2Input) (*aws_s3.ListObjectsV2Output, error) {
	f.listedPrefix = aws.StringValue(in.Prefix)
	out := &aws_s3.ListObjectsV2Output{}
	for _, key := range f.objects {
		if strings.HasPrefix(key, f.listedPrefix) {
			out.Contents = append(out.Contents, &aws_s3.Object{Key: aws.String(key)})
		}
	}
	return out, nil
}

func (f *fakeMediaStore) DeleteObjects(in *aws_s3.DeleteObjectsInput) (*aws_s3.DeleteObjectsOutput, error) {
	for _, obj := range in.Delete.Objects {
		f.deleted = append(f.deleted, aws.StringValue(obj.Key))
	}
	return &aws_s3.DeleteObjectsOutput{}, nil
}

func TestDeleteObjectsByPrefixDeletesStoredKeys(t *testing.T) {
	store := &fakeMediaStore{objects: []string{
		"assets/products/P1/front.png",
		"assets/products/P1/back.png",
		"assets/products/P10/front.png",
	}}

	err := deleteObjectsByPrefix(store, "elastica-media", "assets/products/P1/")
	require.NoError(t, err)

	assert.Equal(t, "assets/products/P1/", store.listedPrefix)
	assert.ElementsMatch(t, []string{
		"assets/products/P1/front.png",
		"assets/products/P1/back.png",
	}, store.deleted)
	assert.NotContains(t, store.deleted, "assets/products/P10/front.png")
}

func TestDeleteObjectsByPrefixEmptyFolder(t *testing.T) {
	store := &fakeMediaStore{}

	err := deleteObjectsByPrefix(store, "elastica-media", "assets/products/P9/")
	require.NoError(t, err)
	assert.Empty(t, store.deleted)
}
