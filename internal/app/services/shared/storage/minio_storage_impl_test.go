package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type receivedObject struct {
	method      string
	path        string
	contentType string
	body        []byte
}

func newS3Server(t *testing.T, status int) (*httptest.Server, *receivedObject) {
	t.Helper()
	received := &receivedObject{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.method = r.Method
		received.path = r.URL.Path
		received.contentType = r.Header.Get("Content-Type")
		received.body, _ = io.ReadAll(r.Body)
		if status != http.StatusOK {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`))
			return
		}
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server, received
}

func newTestMinioClient(t *testing.T, serverURL string) *minio.Client {
	t.Helper()
	endpoint, err := url.Parse(serverURL)
	require.NoError(t, err)

	client, err := minio.New(endpoint.Host, &minio.Options{
		Creds:  credentials.NewStaticV4("access", "secret", ""),
		Secure: false,
		Region: "us-east-1",
	})
	require.NoError(t, err)
	return client
}

func TestMinioStorage_UploadObject(t *testing.T) {
	t.Run("Object Stored And URL Returned", func(t *testing.T) {
		server, received := newS3Server(t, http.StatusOK)
		storage := NewMinioStorage(newTestMinioClient(t, server.URL), "https://files.halo-optom.id/")
		content := []byte("\x89PNG\r\n\x1a\nproof")

		objectURL, err := storage.UploadObject(context.Background(), "payment-proofs", "p-1/receipt.png", "image/png", bytes.NewReader(content), int64(len(content)))

		require.NoError(t, err)
		assert.Equal(t, "https://files.halo-optom.id/payment-proofs/p-1/receipt.png", objectURL)
		assert.Equal(t, http.MethodPut, received.method)
		assert.Equal(t, "/payment-proofs/p-1/receipt.png", received.path)
		assert.Equal(t, "image/png", received.contentType)
		assert.True(t, bytes.Contains(received.body, content))
	})

	t.Run("Upload Refused", func(t *testing.T) {
		server, _ := newS3Server(t, http.StatusForbidden)
		storage := NewMinioStorage(newTestMinioClient(t, server.URL), "https://files.halo-optom.id")
		content := []byte("proof")

		_, err := storage.UploadObject(context.Background(), "payment-proofs", "p-1/receipt.png", "image/png", bytes.NewReader(content), int64(len(content)))

		assert.Error(t, err)
	})
}
