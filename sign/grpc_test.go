package sign

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/golden-vcr/macsig/mac"
)

func Test_Credentials(t *testing.T) {
	engine, err := mac.NewEngine([]byte("my-secret"))
	assert.NoError(t, err)
	creds := NewCredentials(engine)

	t.Run("metadata is populated as expected", func(t *testing.T) {
		md, err := creds.GetRequestMetadata(context.Background())
		assert.NoError(t, err)

		_, err = uuid.Parse(md[HeaderRequestId])
		assert.NoError(t, err)
		assert.NotEmpty(t, md[HeaderRequestTimestamp])
		assert.True(t, strings.HasPrefix(md[HeaderSignature], SignaturePrefix))
	})

	t.Run("does not require transport security", func(t *testing.T) {
		assert.False(t, creds.RequireTransportSecurity())
	})
}

func Test_UnaryServerInterceptor(t *testing.T) {
	engine, err := mac.NewEngine([]byte("my-secret"))
	assert.NoError(t, err)
	intercept := UnaryServerInterceptor(engine)

	info := &grpc.UnaryServerInfo{FullMethod: "/macsig.v1.Macsig/Hash"}
	handler := func(ctx context.Context, req any) (any, error) {
		return "handled", nil
	}

	invoke := func(md metadata.MD) (any, error) {
		ctx := context.Background()
		if md != nil {
			ctx = metadata.NewIncomingContext(ctx, md)
		}
		return intercept(ctx, struct{}{}, info, handler)
	}

	t.Run("call without metadata is rejected", func(t *testing.T) {
		_, err := invoke(nil)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("call with a forged signature is rejected", func(t *testing.T) {
		_, err := invoke(metadata.Pairs(
			HeaderRequestId, "d6c6a6d0-bb4e-4ff2-8188-4dda238f9223",
			HeaderRequestTimestamp, "2023-12-06T21:06:04+00:00",
			HeaderSignature, SignaturePrefix+"AAAA",
		))
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("call with a malformed signature is rejected", func(t *testing.T) {
		_, err := invoke(metadata.Pairs(
			HeaderRequestId, "d6c6a6d0-bb4e-4ff2-8188-4dda238f9223",
			HeaderRequestTimestamp, "2023-12-06T21:06:04+00:00",
			HeaderSignature, SignaturePrefix+"!!!",
		))
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("call signed with the shared secret is handled", func(t *testing.T) {
		// Build the metadata exactly as NewCredentials would
		md, err := NewCredentials(engine).GetRequestMetadata(context.Background())
		assert.NoError(t, err)
		result, err := invoke(metadata.New(md))
		assert.NoError(t, err)
		assert.Equal(t, "handled", result)
	})

	t.Run("deterministic signature is accepted", func(t *testing.T) {
		// Same fixed inputs as the HTTP signing tests, minus the body:
		// the gRPC scheme signs requestId + timestamp only
		_, err := invoke(metadata.Pairs(
			HeaderRequestId, "d6c6a6d0-bb4e-4ff2-8188-4dda238f9223",
			HeaderRequestTimestamp, "2023-12-06T21:06:04+00:00",
			HeaderSignature, SignaturePrefix+"ir_9la2DMpsZqdp2glnIknTcfLpmh_P2u1A5-mQLHwnmvbMTBlr1feRw0CwJiJs2B6LMmZRIOVlGPMv8xZ8qvQ",
		))
		assert.NoError(t, err)
	})
}
