package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/tripsplit/internal/metrics"
	api "github.com/mmynk/tripsplit/pkg/api"
	"github.com/mmynk/tripsplit/pkg/api/apiconnect"
)

// stubLedger answers ValidateShares and leaves everything else unimplemented.
type stubLedger struct {
	apiconnect.UnimplementedLedgerServiceHandler
}

func (stubLedger) ValidateShares(context.Context, *connect.Request[api.ValidateSharesRequest]) (*connect.Response[api.ValidateSharesResponse], error) {
	return connect.NewResponse(&api.ValidateSharesResponse{Result: api.ShareCheckOK}), nil
}

func setupInterceptedServer(t *testing.T, interceptors ...connect.Interceptor) (apiconnect.LedgerServiceClient, func()) {
	t.Helper()

	path, handler := apiconnect.NewLedgerServiceHandler(stubLedger{}, connect.WithInterceptors(interceptors...))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	return apiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL), server.Close
}

func TestMetricsInterceptor(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	client, cleanup := setupInterceptedServer(t, MetricsInterceptor(m))
	defer cleanup()
	ctx := context.Background()

	if _, err := client.ValidateShares(ctx, connect.NewRequest(&api.ValidateSharesRequest{})); err != nil {
		t.Fatalf("ValidateShares failed: %v", err)
	}
	if _, err := client.GetDebts(ctx, connect.NewRequest(&api.GetDebtsRequest{TripId: "t"})); err == nil {
		t.Fatal("expected unimplemented error")
	}

	ok := testutil.ToFloat64(m.RPCRequests.WithLabelValues(apiconnect.LedgerServiceValidateSharesProcedure, "ok"))
	if ok != 1 {
		t.Errorf("ok requests: expected 1, got %v", ok)
	}
	failed := testutil.ToFloat64(m.RPCRequests.WithLabelValues(apiconnect.LedgerServiceGetDebtsProcedure, connect.CodeUnimplemented.String()))
	if failed != 1 {
		t.Errorf("unimplemented requests: expected 1, got %v", failed)
	}
	if got := testutil.CollectAndCount(m.RPCDuration); got != 2 {
		t.Errorf("duration series: expected 2, got %d", got)
	}
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(previous)

	client, cleanup := setupInterceptedServer(t, LoggingInterceptor())
	defer cleanup()
	ctx := context.Background()

	if _, err := client.ValidateShares(ctx, connect.NewRequest(&api.ValidateSharesRequest{})); err != nil {
		t.Fatalf("ValidateShares failed: %v", err)
	}
	_, _ = client.GetBalances(ctx, connect.NewRequest(&api.GetBalancesRequest{TripId: "t"}))

	out := buf.String()
	if !strings.Contains(out, `msg="RPC ok"`) || !strings.Contains(out, apiconnect.LedgerServiceValidateSharesProcedure) {
		t.Errorf("missing success line in %q", out)
	}
	if !strings.Contains(out, `msg="RPC error"`) || !strings.Contains(out, "code=unimplemented") || !strings.Contains(out, "level=WARN") {
		t.Errorf("missing error line in %q", out)
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		code connect.Code
		want slog.Level
	}{
		{connect.CodeInvalidArgument, slog.LevelWarn},
		{connect.CodeNotFound, slog.LevelWarn},
		{connect.CodeFailedPrecondition, slog.LevelWarn},
		{connect.CodeInternal, slog.LevelError},
		{connect.CodeUnavailable, slog.LevelError},
	}
	for _, tt := range tests {
		if got := levelFor(tt.code); got != tt.want {
			t.Errorf("levelFor(%s) = %s, want %s", tt.code, got, tt.want)
		}
	}
}
