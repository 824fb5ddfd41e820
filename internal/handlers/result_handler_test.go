package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resumeiq/internal/models"
)

func seedAnalysis(env *testEnv, filename string) uuid.UUID {
	result := "90%"
	analysis := models.Analysis{
		ID:             uuid.New(),
		ResumeFilename: filename,
		JobDescription: "Backend engineer",
		Model:          "gemini-test",
		Status:         models.StatusCompleted,
		Result:         &result,
		PageCount:      1,
	}
	env.repo.analyses = append(env.repo.analyses, analysis)
	return analysis.ID
}

func TestHandleGetResult(t *testing.T) {
	env := newTestEnv()
	id := seedAnalysis(env, "resume.pdf")

	status, body := doRequest(t, env.app, httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+id.String(), nil))
	require.Equal(t, http.StatusOK, status)

	var analysis models.Analysis
	require.NoError(t, json.Unmarshal([]byte(body), &analysis))
	assert.Equal(t, id, analysis.ID)
	assert.Equal(t, "resume.pdf", analysis.ResumeFilename)
	require.NotNil(t, analysis.Result)
	assert.Equal(t, "90%", *analysis.Result)
}

func TestHandleGetResultInvalidID(t *testing.T) {
	env := newTestEnv()

	status, _ := doRequest(t, env.app, httptest.NewRequest(http.MethodGet, "/api/v1/analyses/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHandleGetResultNotFound(t *testing.T) {
	env := newTestEnv()

	status, _ := doRequest(t, env.app, httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHandleListResults(t *testing.T) {
	env := newTestEnv()
	seedAnalysis(env, "a.pdf")
	seedAnalysis(env, "b.pdf")
	seedAnalysis(env, "c.pdf")

	status, body := doRequest(t, env.app, httptest.NewRequest(http.MethodGet, "/api/v1/analyses?limit=2", nil))
	require.Equal(t, http.StatusOK, status)

	var resp models.AnalysisListResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Analyses, 2)
}

func TestHandleListResultsInvalidLimit(t *testing.T) {
	env := newTestEnv()

	for _, limit := range []string{"0", "-3", "101"} {
		status, _ := doRequest(t, env.app, httptest.NewRequest(http.MethodGet, "/api/v1/analyses?limit="+limit, nil))
		assert.Equal(t, http.StatusBadRequest, status, "limit=%s", limit)
	}
}
