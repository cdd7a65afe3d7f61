package repository

import (
	"fmt"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/suite"
	"google.golang.org/api/iterator"

	bCtx "github.com/andy-marketplace/goapi/base/ctx"
)

type cloudStorageTestSuite struct {
	suite.Suite
	client        *storage.Client
	bucketName    string
	bucketUrl     string
	testingFolder string
}

func TestCloudStorageWriterRepo(t *testing.T) {
	// needs application default credentials and a writable bucket
	if testing.Short() || len(os.Getenv("TEST_GCS_BUCKET")) == 0 {
		t.Skip()
	}
	suite.Run(t, new(cloudStorageTestSuite))
}

func (s *cloudStorageTestSuite) SetupSuite() {
	client, err := storage.NewClient(bCtx.Background())
	s.Require().NoError(err)

	s.client = client
	s.bucketName = os.Getenv("TEST_GCS_BUCKET")
	s.bucketUrl = fmt.Sprintf("https://storage.googleapis.com/%s/", s.bucketName)
	s.testingFolder = "testing"
}

func (s *cloudStorageTestSuite) TearDownSuite() {
	ctx := bCtx.Background()
	bucket := s.client.Bucket(s.bucketName)
	it := bucket.Objects(ctx, &storage.Query{Prefix: s.testingFolder})
	for {
		attr, err := it.Next()
		if err == iterator.Done {
			break
		}
		s.Require().NoError(err)
		s.NoError(bucket.Object(attr.Name).Delete(ctx))
	}
	s.NoError(s.client.Close())
}

func (s *cloudStorageTestSuite) TestStore() {
	ctx := bCtx.Background()
	w, err := NewCloudStorageWriterRepo(&CloudStorageWriterRepoCfg{
		Client:     s.client,
		BucketName: s.bucketName,
		Timeout:    10 * time.Second,
		Url:        s.bucketUrl,
	})
	s.Require().NoError(err)

	contentPath := fmt.Sprintf("%s/pins/QmHash", s.testingFolder)
	url, err := w.Store(ctx, contentPath, []byte(`{"name":"Cat"}`), "application/json")
	s.Require().NoError(err)
	s.Equal(s.bucketUrl+contentPath, url)

	attrs, err := s.client.Bucket(s.bucketName).Object(contentPath).Attrs(ctx)
	s.Require().NoError(err)
	s.Equal("application/json", attrs.ContentType)
}
