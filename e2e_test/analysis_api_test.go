//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"annoscape/cmd"
	"annoscape/model"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	handler(w, req)
	return w.Result()
}

func streetSceneEvents() []model.EventPayload {
	return []model.EventPayload{
		{Start: 1, End: 3, Label: "dog_bark", Role: "foreground"},
		{Start: 2, End: 5, Label: "siren", Role: "foreground"},
		{Start: 6, End: 8, Label: "jackhammer", Role: "foreground"},
	}
}

func TestPolyphonyE2E(t *testing.T) {
	body := model.PolyphonyRequestBody{Duration: 10, Events: streetSceneEvents()}
	resp := postJSON(t, cmd.HandlePolyphony, "/polyphony", body)
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var out model.PolyphonyResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		panic(err.Error())
	}
	assert.Equal(out, model.PolyphonyResponse{Polyphony: 2})
}

func TestCropE2E(t *testing.T) {
	body := model.CropRequestBody{Duration: 10, Crop: 4, Events: streetSceneEvents()}
	resp := postJSON(t, cmd.HandleCrop, "/crop", body)
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var out model.CropResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		panic(err.Error())
	}
	assert.Equal(out, model.CropResponse{
		Duration: 4,
		Events: []model.EventPayload{
			{Start: 0, End: 2, Label: "siren", Role: "foreground"},
			{Start: 3, End: 4, Label: "jackhammer", Role: "foreground"},
		},
	})
}

func TestCropRejectsBadDurationE2E(t *testing.T) {
	body := model.CropRequestBody{Duration: 10, Crop: -1, Events: streetSceneEvents()}
	resp := postJSON(t, cmd.HandleCrop, "/crop", body)
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 422)

	var out model.ErrorResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		panic(err.Error())
	}
	assert.Contains(out.Error, "crop duration")
}

func TestCropRejectsMalformedBodyE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/crop", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	cmd.HandleCrop(w, req)

	assert.Equal(t, w.Result().StatusCode, 400)
}

func TestLabelsE2E(t *testing.T) {
	dir := t.TempDir()
	for _, label := range []string{"siren", "dog_bark"} {
		if err := os.Mkdir(filepath.Join(dir, label), 0755); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/labels?folder="+url.QueryEscape(dir), nil)
	w := httptest.NewRecorder()
	cmd.HandleLabels(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var out model.LabelsResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		panic(err.Error())
	}
	assert.Equal(out, model.LabelsResponse{Labels: []string{"dog_bark", "siren"}})
}
