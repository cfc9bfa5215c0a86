// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package eopf

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/clausmichele/eopf-stac/util"
)

// Reader fetches the consolidated metadata of a product from a local
// directory, an s3:// location, or an http(s):// S3-compatible endpoint
type Reader struct {
	// S3 endpoint and credentials, used for s3:// locations
	S3EndpointURL   string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

// NewReader creates a Reader from the converter settings
func NewReader(settings *util.Settings) *Reader {
	return &Reader{
		S3EndpointURL:   settings.S3EndpointURL,
		AccessKeyID:     settings.AWSAccessKeyID,
		SecretAccessKey: settings.AWSSecretAccessKey,
		Region:          settings.AWSRegion,
	}
}

// ReadMetadata reads and validates the consolidated metadata of the product at href
func (r *Reader) ReadMetadata(ctx context.Context, href string) (*Metadata, error) {
	data, err := r.fetch(ctx, href)
	if err != nil {
		return nil, err
	}
	return ParseMetadata(data)
}

func (r *Reader) fetch(ctx context.Context, href string) ([]byte, error) {
	switch {
	case strings.HasPrefix(href, "s3://"):
		return r.fetchS3(ctx, href)
	case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
		return r.fetchHTTP(ctx, href)
	default:
		path := filepath.Join(href, MetadataFile)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return data, nil
	}
}

// fetchS3 reads s3://bucket/key/.zmetadata with the configured credentials
func (r *Reader) fetchS3(ctx context.Context, href string) ([]byte, error) {
	u, err := url.Parse(href)
	if err != nil {
		return nil, fmt.Errorf("invalid S3 location %s: %w", href, err)
	}
	provider := credentials.NewStaticCredentialsProvider(r.AccessKeyID, r.SecretAccessKey, "")
	client, err := r.newClient(ctx, r.S3EndpointURL, provider)
	if err != nil {
		return nil, err
	}
	return getObject(ctx, client, u.Host, objectKey(u.Path))
}

// fetchHTTP treats an http(s) location as an anonymous S3-compatible endpoint
// whose first path segment is the bucket
func (r *Reader) fetchHTTP(ctx context.Context, href string) ([]byte, error) {
	u, err := url.Parse(href)
	if err != nil {
		return nil, fmt.Errorf("invalid location %s: %w", href, err)
	}
	bucket, key, found := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
	if !found || bucket == "" {
		return nil, fmt.Errorf("location %s has no bucket and key", href)
	}
	endpoint := u.Scheme + "://" + u.Host
	client, err := r.newClient(ctx, endpoint, aws.AnonymousCredentials{})
	if err != nil {
		return nil, err
	}
	return getObject(ctx, client, bucket, objectKey(key))
}

func (r *Reader) newClient(ctx context.Context, endpoint string, provider aws.CredentialsProvider) (*s3.Client, error) {
	region := r.Region
	if region == "" {
		region = "us-east-1"
	}
	// the buildable client lets the SDK apply AWS_CA_BUNDLE to its transport
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(provider),
		config.WithHTTPClient(awshttp.NewBuildableClient()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	clientOpts := func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}
	return s3.NewFromConfig(awsCfg, clientOpts), nil
}

func objectKey(productPath string) string {
	productPath = strings.Trim(productPath, "/")
	if productPath == "" {
		return MetadataFile
	}
	return productPath + "/" + MetadataFile
}

func getObject(ctx context.Context, client *s3.Client, bucket, key string) ([]byte, error) {
	result, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get failed for s3://%s/%s: %w", bucket, key, err)
	}
	defer func() { _ = result.Body.Close() }()

	return io.ReadAll(result.Body)
}
