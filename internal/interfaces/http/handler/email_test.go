package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	appcrm "github.com/instrategy/salesflow/internal/application/crm"
	"github.com/instrategy/salesflow/internal/domain/crm"
	"github.com/instrategy/salesflow/internal/domain/shared"
	"github.com/instrategy/salesflow/internal/infrastructure/mail"
)

type fakeSender struct {
	configured bool
	sendErr    error
	sent       []*mail.Message
}

func (f *fakeSender) Configured() bool { return f.configured }

func (f *fakeSender) Send(msg *mail.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeEmailRepo struct {
	created []*crm.EmailLog
}

func (f *fakeEmailRepo) List(_ context.Context, _ shared.ListQuery) ([]crm.EmailLog, error) {
	return nil, nil
}

func (f *fakeEmailRepo) FindByID(_ context.Context, _ int64) (*crm.EmailLog, error) {
	return nil, shared.ErrNotFound
}

func (f *fakeEmailRepo) Create(_ context.Context, email *crm.EmailLog) (*crm.EmailLog, error) {
	f.created = append(f.created, email)
	return email, nil
}

func (f *fakeEmailRepo) Update(_ context.Context, _ int64, _ map[string]interface{}) ([]crm.EmailLog, error) {
	return nil, nil
}

func (f *fakeEmailRepo) Delete(_ context.Context, _ int64) ([]crm.EmailLog, error) {
	return nil, nil
}

func newEmailRouter(sender *fakeSender, repo *fakeEmailRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewEmailHandler(appcrm.NewEmailLogService(repo), appcrm.NewMailService(sender, repo, zap.NewNop()))
	r := gin.New()
	r.GET("/emails", h.List)
	r.POST("/emails/send", h.Send)
	r.GET("/emails/health", h.Health)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for name, content := range files {
		fw, err := mw.CreateFormFile("attachments", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestEmailSendEndpoint(t *testing.T) {
	t.Run("delivers with attachments and records the audit row", func(t *testing.T) {
		sender := &fakeSender{configured: true}
		repo := &fakeEmailRepo{}
		r := newEmailRouter(sender, repo)

		body, contentType := multipartBody(t,
			map[string]string{
				"asunto": "Propuesta",
				"para":   "a@b.c, d@e.f",
				"body":   "Hola",
			},
			map[string]string{"oferta.pdf": "%PDF-1.4"},
		)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/emails/send", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		respBody := w.Body.String()
		assert.True(t, gjson.Get(respBody, "ok").Bool())
		assert.Len(t, gjson.Get(respBody, "data.accepted").Array(), 2)
		assert.Equal(t, int64(1), gjson.Get(respBody, "data.attachments_sent").Int())
		assert.True(t, gjson.Get(respBody, "data.audit.recorded").Bool())

		require.Len(t, sender.sent, 1)
		require.Len(t, sender.sent[0].Attachments, 1)
		assert.Equal(t, "oferta.pdf", sender.sent[0].Attachments[0].Filename)
		require.Len(t, repo.created, 1)
		assert.Equal(t, "enviado", *repo.created[0].Estado)
	})

	t.Run("unconfigured smtp is a 500 config error", func(t *testing.T) {
		r := newEmailRouter(&fakeSender{}, &fakeEmailRepo{})

		body, contentType := multipartBody(t, map[string]string{"asunto": "s", "para": "a@b.c"}, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/emails/send", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "ERR_CONFIG", gjson.Get(w.Body.String(), "error.code").String())
	})

	t.Run("missing subject is a 400", func(t *testing.T) {
		r := newEmailRouter(&fakeSender{configured: true}, &fakeEmailRepo{})

		body, contentType := multipartBody(t, map[string]string{"para": "a@b.c"}, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/emails/send", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "ERR_INVALID_INPUT", gjson.Get(w.Body.String(), "error.code").String())
	})
}

func TestEmailHealthEndpoint(t *testing.T) {
	r := newEmailRouter(&fakeSender{configured: true}, &fakeEmailRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/emails/health", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gjson.Get(w.Body.String(), "data.smtp_configured").Bool())
}
