package crm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/instrategy/salesflow/internal/infrastructure/gemini"
)

type fakeLLM struct {
	result *gemini.Result
	err    error
	prompt string
}

func (f *fakeLLM) GenerateContent(_ context.Context, prompt string) (*gemini.Result, error) {
	f.prompt = prompt
	return f.result, f.err
}

func TestExtractionParse(t *testing.T) {
	t.Run("no api key is a healthy degraded outcome", func(t *testing.T) {
		svc := NewExtractionService(nil, &fakeCompanyRepo{}, zap.NewNop())

		outcome := svc.Parse(context.Background(), ParseContacts, "some notes")
		assert.False(t, outcome.OK)
		assert.Equal(t, ReasonNoKey, outcome.Reason)
		assert.Equal(t, http.StatusOK, outcome.HTTPStatus())
	})

	t.Run("parseable output", func(t *testing.T) {
		llm := &fakeLLM{result: &gemini.Result{Text: "Here:\n[{\"nombre\":\"Juan Pérez\"}]"}}
		svc := NewExtractionService(llm, &fakeCompanyRepo{}, zap.NewNop())

		outcome := svc.Parse(context.Background(), ParseContacts, "notes")
		assert.True(t, outcome.OK)
		assert.JSONEq(t, `[{"nombre":"Juan Pérez"}]`, string(outcome.Parsed))
		assert.Equal(t, http.StatusOK, outcome.HTTPStatus())
	})

	t.Run("unparseable output keeps the raw text", func(t *testing.T) {
		llm := &fakeLLM{result: &gemini.Result{Text: "no entities found"}}
		svc := NewExtractionService(llm, &fakeCompanyRepo{}, zap.NewNop())

		outcome := svc.Parse(context.Background(), ParseCompanies, "notes")
		assert.True(t, outcome.OK)
		assert.Nil(t, outcome.Parsed)
		assert.Equal(t, "no entities found", outcome.Raw)
	})

	t.Run("empty candidate text keeps the envelope", func(t *testing.T) {
		llm := &fakeLLM{result: &gemini.Result{Text: "", Raw: `{"candidates":[]}`}}
		svc := NewExtractionService(llm, &fakeCompanyRepo{}, zap.NewNop())

		outcome := svc.Parse(context.Background(), ParseCompanies, "notes")
		assert.True(t, outcome.OK)
		assert.Nil(t, outcome.Parsed)
		assert.Equal(t, `{"candidates":[]}`, outcome.Raw)
	})

	t.Run("upstream failure becomes a 502 outcome", func(t *testing.T) {
		llm := &fakeLLM{err: &gemini.APIError{StatusCode: 429, Body: "quota exceeded"}}
		svc := NewExtractionService(llm, &fakeCompanyRepo{}, zap.NewNop())

		outcome := svc.Parse(context.Background(), ParseContacts, "notes")
		assert.False(t, outcome.OK)
		assert.Equal(t, ReasonGeminiError, outcome.Reason)
		assert.Equal(t, 429, outcome.Status)
		assert.Equal(t, "quota exceeded", outcome.Body)
		assert.Equal(t, http.StatusBadGateway, outcome.HTTPStatus())
	})

	t.Run("transport failure becomes a 500 outcome", func(t *testing.T) {
		llm := &fakeLLM{err: errors.New("dial tcp: timeout")}
		svc := NewExtractionService(llm, &fakeCompanyRepo{}, zap.NewNop())

		outcome := svc.Parse(context.Background(), ParseContacts, "notes")
		assert.Equal(t, ReasonException, outcome.Reason)
		assert.Contains(t, outcome.Message, "timeout")
		assert.Equal(t, http.StatusInternalServerError, outcome.HTTPStatus())
	})
}

func TestPromptContracts(t *testing.T) {
	t.Run("company prompt mandates the items envelope and field set", func(t *testing.T) {
		llm := &fakeLLM{result: &gemini.Result{Text: "{}"}}
		svc := NewExtractionService(llm, &fakeCompanyRepo{}, zap.NewNop())

		svc.Parse(context.Background(), ParseCompanies, "Acme reported strong revenue")
		assert.Contains(t, llm.prompt, `top-level key "items"`)
		for _, field := range []string{"name", "country", "sector", "total_revenue", "net_profit", "lead_status", "source", "confidence"} {
			assert.Contains(t, llm.prompt, "- "+field+":")
		}
		assert.Contains(t, llm.prompt, `"lead", "prospect", "customer", "unknown"`)
		assert.Contains(t, llm.prompt, "Acme reported strong revenue")
	})

	t.Run("contact prompt mandates split names and the role enum", func(t *testing.T) {
		llm := &fakeLLM{result: &gemini.Result{Text: "{}"}}
		svc := NewExtractionService(llm, &fakeCompanyRepo{}, zap.NewNop())

		svc.Parse(context.Background(), ParseContacts, "María Rivas dirige Acme")
		assert.Contains(t, llm.prompt, `clave de nivel superior "items"`)
		for _, field := range []string{"first_name", "last_name", "company", "cargo", "email", "telefono", "country", "role"} {
			assert.Contains(t, llm.prompt, "- "+field+":")
		}
		assert.Contains(t, llm.prompt, `"Trabajador" o "Director General"`)
		assert.Contains(t, llm.prompt, "TEXTO:\nMaría Rivas dirige Acme")
	})
}

func TestContactPromptContext(t *testing.T) {
	t.Run("known companies are interpolated", func(t *testing.T) {
		llm := &fakeLLM{result: &gemini.Result{Text: "[]"}}
		repo := &fakeCompanyRepo{names: []string{"Acme", "Globex"}}
		svc := NewExtractionService(llm, repo, zap.NewNop())

		svc.Parse(context.Background(), ParseContacts, "notes")
		assert.Contains(t, llm.prompt, "Empresas conocidas")
		assert.Contains(t, llm.prompt, "Acme, Globex")
	})

	t.Run("name list is capped", func(t *testing.T) {
		names := make([]string, 205)
		for i := range names {
			names[i] = fmt.Sprintf("Empresa %03d", i)
		}
		llm := &fakeLLM{result: &gemini.Result{Text: "[]"}}
		svc := NewExtractionService(llm, &fakeCompanyRepo{names: names}, zap.NewNop())

		svc.Parse(context.Background(), ParseContacts, "notes")
		assert.Contains(t, llm.prompt, "Empresa 199")
		assert.NotContains(t, llm.prompt, "Empresa 200")
	})

	t.Run("context fetch failure is tolerated", func(t *testing.T) {
		llm := &fakeLLM{result: &gemini.Result{Text: "[]"}}
		svc := NewExtractionService(llm, &fakeCompanyRepo{namesErr: errors.New("db down")}, zap.NewNop())

		outcome := svc.Parse(context.Background(), ParseContacts, "notes")
		require.True(t, outcome.OK)
		assert.NotContains(t, llm.prompt, "Empresas conocidas")
	})

	t.Run("company prompt skips the context fetch", func(t *testing.T) {
		llm := &fakeLLM{result: &gemini.Result{Text: "[]"}}
		repo := &fakeCompanyRepo{names: []string{"Acme"}}
		svc := NewExtractionService(llm, repo, zap.NewNop())

		svc.Parse(context.Background(), ParseCompanies, "notes")
		assert.NotContains(t, llm.prompt, "Empresas conocidas")
	})
}
