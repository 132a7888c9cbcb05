package handler_test

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"time"

	"threatwatch/internal/http/handler"
	"threatwatch/internal/http/handler/fake"
	"threatwatch/internal/http/payload"
	"threatwatch/internal/models"
	"threatwatch/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	gojwt "github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

var _ = Describe("StatusHandler", func() {
	var (
		sh            *handler.StatusHandler
		mux           *http.ServeMux
		fakeMonitor   *fake.StatusService
		fakeHistory   *fake.AlertHistory
		fakeTokens    *fake.TokenValidator
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		resp          envelope
		fakeErr       error
		now           time.Time
		entry         models.AlertEntry
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		handler.TimeNow = func() time.Time { return now }
		DeferCleanup(func() { handler.TimeNow = time.Now })

		fakeMonitor = new(fake.StatusService)
		fakeHistory = new(fake.AlertHistory)
		fakeTokens = new(fake.TokenValidator)
		fakeTokens.ValidateReturns(gojwt.MapClaims{"sub": "oncall", "scope": jwt.ScopeStatusRead}, nil)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeAndValidateQueryStub = payload.DecodeValidator{}.DecodeAndValidateQuery
		fakeValidator.ValidatePayloadStub = payload.DecodeValidator{}.ValidatePayload

		entry = models.AlertEntry{
			Alert: models.Alert{
				ID:             "a-1",
				TxHash:         common.HexToHash("0x01"),
				Actor:          common.HexToAddress("0xa1"),
				Severity:       models.SeverityCritical,
				Category:       models.CategoryRugPull,
				Confidence:     92,
				CompositeScore: 97,
				EconomicImpact: big.NewInt(5000),
				RelatedAlerts:  []common.Hash{common.HexToHash("0x02")},
				BlockNumber:    11,
			},
			Outcome: models.Outcome{
				Status:         models.OutcomeConfirmed,
				InclusionBlock: 13,
				BroadcastHash:  common.HexToHash("0xbb"),
			},
			RecordedAt: now,
		}

		sh = handler.NewStatusHandler(zap.NewNop().Sugar(), fakeValidator, fakeMonitor, fakeHistory, fakeTokens)
		mux = http.NewServeMux()
		sh.Register(mux)
		w = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		mux.ServeHTTP(w, req)
		resp = envelope{}
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
	})

	Describe("HandleHealth", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/threatwatch/health", nil)
		})

		It("does not require a token", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(resp.Message).To(Equal("ok"))
			Expect(fakeTokens.ValidateCallCount()).To(Equal(0))
		})
	})

	Describe("HandleGetStats", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/threatwatch/stats", nil)
			req.Header.Set("Authorization", "Bearer good-token")
			fakeMonitor.StatusReturns(models.Status{
				Stats:              models.Stats{Analyzed: 10, ThreatsDetected: 3, AlertsSent: 2, Errors: 1},
				LastConfirmedBlock: 42,
				InFlightAlerts:     1,
				HeadSubscribed:     true,
				StartedAt:          now.Add(-90 * time.Second),
			})
		})

		It("returns the monitor status", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeTokens.ValidateArgsForCall(0)).To(Equal("good-token"))

			var view handler.StatusView
			Expect(json.Unmarshal(resp.Data, &view)).To(Succeed())
			Expect(view.Stats.Analyzed).To(Equal(uint64(10)))
			Expect(view.Stats.AlertsSent).To(Equal(uint64(2)))
			Expect(view.LastConfirmedBlock).To(Equal(uint64(42)))
			Expect(view.HeadSubscribed).To(BeTrue())
			Expect(view.Uptime).To(Equal("1m30s"))
		})

		When("the authorization header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("Authorization")
			})

			It("responds unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(resp.Error).To(Equal("bearer token is required"))
				Expect(fakeMonitor.StatusCallCount()).To(Equal(0))
			})
		})

		When("the token is expired", func() {
			BeforeEach(func() {
				fakeTokens.ValidateReturns(nil, jwt.ErrTokenExpired)
			})

			It("responds unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(resp.Error).To(Equal(jwt.ErrTokenExpired.Error()))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeTokens.ValidateReturns(nil, fakeErr)
			})

			It("hides the validation detail", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(resp.Error).To(Equal(jwt.ErrTokenNotValid.Error()))
			})
		})

		When("the token lacks the read scope", func() {
			BeforeEach(func() {
				fakeTokens.ValidateReturns(gojwt.MapClaims{"sub": "intruder"}, nil)
			})

			It("responds forbidden", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})
	})

	Describe("HandleGetAlerts", func() {
		var alerts map[string][]handler.AlertView

		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/threatwatch/alerts?limit=5", nil)
			req.Header.Set("Authorization", "Bearer good-token")
			low := entry
			low.Alert.Severity = models.SeverityMedium
			low.Alert.TxHash = common.HexToHash("0x03")
			fakeHistory.RecentAlertsReturns([]models.AlertEntry{entry, low}, nil)
		})

		JustBeforeEach(func() {
			alerts = nil
			if w.Code == http.StatusOK {
				Expect(json.Unmarshal(resp.Data, &alerts)).To(Succeed())
			}
		})

		It("returns recent alerts", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, limit := fakeHistory.RecentAlertsArgsForCall(0)
			Expect(limit).To(Equal(5))
			Expect(alerts["alerts"]).To(HaveLen(2))

			first := alerts["alerts"][0]
			Expect(first.TxHash).To(Equal(entry.Alert.TxHash.Hex()))
			Expect(first.Severity).To(Equal("critical"))
			Expect(first.Category).To(Equal("rug-pull"))
			Expect(first.EconomicImpact).To(Equal("5000"))
			Expect(first.Outcome).To(Equal("confirmed"))
			Expect(first.InclusionBlock).To(Equal(uint64(13)))
			Expect(first.RelatedAlerts).To(ConsistOf(common.HexToHash("0x02").Hex()))
		})

		When("a minimum severity is requested", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/threatwatch/alerts?minSeverity=high", nil)
				req.Header.Set("Authorization", "Bearer good-token")
			})

			It("filters lower severities", func() {
				Expect(alerts["alerts"]).To(HaveLen(1))
				Expect(alerts["alerts"][0].Severity).To(Equal("critical"))
			})
		})

		When("the limit is out of range", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/threatwatch/alerts?limit=10000", nil)
				req.Header.Set("Authorization", "Bearer good-token")
			})

			It("responds bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeHistory.RecentAlertsCallCount()).To(Equal(0))
			})
		})

		When("the history fails", func() {
			BeforeEach(func() {
				fakeHistory.RecentAlertsReturns(nil, fakeErr)
			})

			It("responds with an internal error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(resp.Error).To(ContainSubstring("fake-error"))
			})
		})
	})

	Describe("HandleGetAlert", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/threatwatch/alerts/"+entry.Alert.TxHash.Hex(), nil)
			req.Header.Set("Authorization", "Bearer good-token")
			fakeHistory.AlertByTxHashReturns(entry, nil)
		})

		It("returns the alert", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, hash := fakeHistory.AlertByTxHashArgsForCall(0)
			Expect(hash).To(Equal(entry.Alert.TxHash))

			var view handler.AlertView
			Expect(json.Unmarshal(resp.Data, &view)).To(Succeed())
			Expect(view.ID).To(Equal("a-1"))
			Expect(view.BroadcastHash).To(Equal(common.HexToHash("0xbb").Hex()))
		})

		When("the alert is unknown", func() {
			BeforeEach(func() {
				fakeHistory.AlertByTxHashReturns(models.AlertEntry{}, models.ErrAlertNotFound)
			})

			It("responds not found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the hash is malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/threatwatch/alerts/0xnothex", nil)
				req.Header.Set("Authorization", "Bearer good-token")
			})

			It("responds bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeHistory.AlertByTxHashCallCount()).To(Equal(0))
			})
		})
	})
})
