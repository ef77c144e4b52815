package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/student-performance-web/internal/prediction/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestPredictorClient_Predict_Success(t *testing.T) {
	var gotBody map[string]float64
	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"category":"Excellent","predicted_score":17.25,"detail":"Predicted Grade: 17.25/20"}`))
	}))
	defer server.Close()

	client := NewPredictorClient(server.URL+"/", 5*time.Second, nil)
	f := domain.DefaultFeatures()
	f.GradePeriod1 = 18

	result, err := client.Predict(context.Background(), domain.BuildRequest(f))
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "Excellent", result.Category)
	assert.Equal(t, 17.25, result.PredictedScore)
	assert.Equal(t, "Predicted Grade: 17.25/20", result.Detail)
	assert.Len(t, gotBody, domain.FieldCount)
	assert.Equal(t, 18.0, gotBody["grade_period1"])
	assert.Equal(t, 1.0, gotBody["internet"])
}

func TestPredictorClient_Predict_ErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{"string detail", http.StatusInternalServerError, `{"detail":"model unavailable"}`, "model unavailable"},
		{"no detail", http.StatusInternalServerError, `{}`, domain.GenericUpstreamDetail},
		{"list detail", http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","age"],"msg":"field required"}]}`, domain.GenericUpstreamDetail},
		{"non json body", http.StatusBadGateway, `<html>bad gateway</html>`, domain.GenericUpstreamDetail},
		{"blank detail", http.StatusServiceUnavailable, `{"detail":"  "}`, domain.GenericUpstreamDetail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewPredictorClient(server.URL, 5*time.Second, nil)
			_, err := client.Predict(context.Background(), domain.BuildRequest(domain.DefaultFeatures()))
			require.Error(t, err)

			var upstream *domain.UpstreamError
			require.True(t, errors.As(err, &upstream))
			assert.Equal(t, tt.status, upstream.StatusCode)
			assert.Equal(t, tt.wantDetail, upstream.Detail)
			assert.False(t, errors.Is(err, domain.ErrPredictorUnreachable))
		})
	}
}

func TestPredictorClient_Predict_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewPredictorClient(url, time.Second, nil)
	_, err := client.Predict(context.Background(), domain.BuildRequest(domain.DefaultFeatures()))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPredictorUnreachable)
}

func TestPredictorClient_Predict_MalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewPredictorClient(server.URL, time.Second, nil)
	_, err := client.Predict(context.Background(), domain.BuildRequest(domain.DefaultFeatures()))
	assert.ErrorIs(t, err, domain.ErrMalformedResult)
}

func TestPredictorClient_Predict_LimiterCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	defer server.Close()

	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	require.True(t, limiter.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	client := NewPredictorClient(server.URL, time.Second, limiter)
	_, err := client.Predict(ctx, domain.BuildRequest(domain.DefaultFeatures()))
	assert.ErrorIs(t, err, domain.ErrPredictorUnreachable)
}
