package recipe

import (
	"SaveBite/domain"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiClient_Generate(t *testing.T) {
	var gotPath, gotKey, gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")

		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if len(body.Contents) > 0 && len(body.Contents[0].Parts) > 0 {
			gotPrompt = body.Contents[0].Parts[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  Sup tomat  "}]}}]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient("secret", "gemini-test", srv.URL)
	text, err := client.Generate(context.Background(), "buat resep")
	require.NoError(t, err)

	assert.Equal(t, "Sup tomat", text)
	assert.Equal(t, "/models/gemini-test:generateContent", gotPath)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "buat resep", gotPrompt)
}

func TestGeminiClient_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "empty" {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
			return
		}
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewGeminiClient("k", "m", srv.URL).Generate(context.Background(), "p")
	assert.ErrorIs(t, err, domain.ErrGeminiAPIFailed)

	_, err = NewGeminiClient("empty", "m", srv.URL).Generate(context.Background(), "p")
	assert.ErrorIs(t, err, domain.ErrGeminiAPIFailed)

	_, err = NewGeminiClient("", "m", srv.URL).Generate(context.Background(), "p")
	assert.Error(t, err)
}
