package webhook_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"leaseline.app/server/core/config"
	"leaseline.app/server/internal/http/handler/webhook"
	"leaseline.app/server/internal/model"
	"leaseline.app/server/internal/service"
)

type fakeInboundService struct {
	handleFn  func(ctx context.Context, params service.InboundSMSParams) (*service.InboundResult, error)
	received  []service.InboundSMSParams
	callCount int
}

func (f *fakeInboundService) Handle(ctx context.Context, params service.InboundSMSParams) (*service.InboundResult, error) {
	f.callCount++
	f.received = append(f.received, params)
	if f.handleFn != nil {
		return f.handleFn(ctx, params)
	}
	return &service.InboundResult{Kind: service.InboundLead, Lead: &model.Lead{ID: 1}}, nil
}

// twilioSign reproduces the documented signature scheme: HMAC-SHA1 over
// the full URL with the sorted form parameters appended.
func twilioSign(authToken, fullURL string, form url.Values) string {
	keys := make([]string, 0, len(form))
	for key := range form {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	payload := fullURL
	for _, key := range keys {
		payload += key + form.Get(key)
	}

	mac := hmac.New(sha1.New, []byte(authToken))
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

var _ = Describe("TwilioWebhookHandler", func() {
	var (
		router  *gin.Engine
		inbound *fakeInboundService
		form    url.Values
	)

	setup := func(cfg config.TwilioConfig) {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		h := webhook.NewTwilioWebhookHandler(inbound, cfg)
		router.POST("/webhooks/twilio/sms", h.HandleSMS)
	}

	post := func(sign func(form url.Values) string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/twilio/sms", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if sign != nil {
			req.Header.Set("X-Twilio-Signature", sign(form))
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		inbound = &fakeInboundService{}
		form = url.Values{}
		form.Set("From", "+15550001111")
		form.Set("To", "+15550007777")
		form.Set("Body", "Is the apartment available?")
		form.Set("MessageSid", "SM123")
	})

	Context("with signature validation off", func() {
		BeforeEach(func() {
			setup(config.TwilioConfig{ValidateSignature: false})
		})

		It("routes the form fields and acks with empty TwiML", func() {
			w := post(nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("text/xml"))
			Expect(w.Body.String()).To(Equal(`<?xml version="1.0" encoding="UTF-8"?><Response></Response>`))

			Expect(inbound.received).To(HaveLen(1))
			Expect(inbound.received[0].From).To(Equal("+15550001111"))
			Expect(inbound.received[0].To).To(Equal("+15550007777"))
			Expect(inbound.received[0].Body).To(Equal("Is the apartment available?"))
			Expect(inbound.received[0].MessageSID).To(Equal("SM123"))
		})

		It("returns 500 so the provider redelivers on processing failure", func() {
			inbound.handleFn = func(ctx context.Context, params service.InboundSMSParams) (*service.InboundResult, error) {
				return nil, errors.New("database down")
			}

			w := post(nil)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Context("with signature validation on", func() {
		const authToken = "test-auth-token"

		BeforeEach(func() {
			setup(config.TwilioConfig{
				AuthToken:         authToken,
				ValidateSignature: true,
				PublicBaseURL:     "https://leaseline.example.com",
			})
		})

		It("accepts a correctly signed request", func() {
			w := post(func(form url.Values) string {
				return twilioSign(authToken, "https://leaseline.example.com/webhooks/twilio/sms", form)
			})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(inbound.callCount).To(Equal(1))
		})

		It("rejects a request signed with the wrong token", func() {
			w := post(func(form url.Values) string {
				return twilioSign("wrong-token", "https://leaseline.example.com/webhooks/twilio/sms", form)
			})

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(inbound.callCount).To(Equal(0))
		})

		It("rejects a request with no signature header", func() {
			w := post(nil)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(inbound.callCount).To(Equal(0))
		})
	})
})
